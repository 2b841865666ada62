package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/models"
	"planboard/internal/services"
)

type ResourceHandler struct {
	service services.ResourceService
}

func NewResourceHandler(service services.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

type resourceRequest struct {
	Name       string              `json:"name" binding:"required"`
	Type       models.ResourceType `json:"type" binding:"required"` // human|software|infrastructure
	HourlyRate float64             `json:"hourly_rate"`
	TotalHours float64             `json:"total_hours" binding:"required"`
}

// @Summary  Create a resource
// @Tags     Resources
// @Accept   json
// @Produce  json
// @Router   /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[resource][create] call by member=%s role=%d", memberID, roleID)

	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[resource][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.Create(c.Request.Context(), &models.Resource{
		Name:       req.Name,
		Type:       req.Type,
		HourlyRate: req.HourlyRate,
		TotalHours: req.TotalHours,
	})
	if err != nil {
		log.Printf("[resource][create][err] %v", err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[resource][create][ok] id=%s name=%q", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// @Summary  Get a resource with assigned/available hours
// @Tags     Resources
// @Produce  json
// @Router   /resources/{id} [get]
func (h *ResourceHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	resource, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[resource][getByID][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get resource"})
		return
	}
	if resource == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	c.JSON(http.StatusOK, resource)
}

// @Summary  List resources
// @Tags     Resources
// @Produce  json
// @Router   /resources [get]
func (h *ResourceHandler) GetAll(c *gin.Context) {
	var filter models.ResourceFilter
	if v, ok := c.GetQuery("type"); ok {
		rt := models.ResourceType(v)
		filter.Type = &rt
	}

	resources, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[resource][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve resources"})
		return
	}
	c.JSON(http.StatusOK, resources)
}

// @Summary  Update a resource
// @Tags     Resources
// @Accept   json
// @Produce  json
// @Router   /resources/{id} [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[resource][update] call by member=%s role=%d id=%s", memberID, roleID, id)

	var req resourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[resource][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &models.Resource{
		Name:       req.Name,
		Type:       req.Type,
		HourlyRate: req.HourlyRate,
		TotalHours: req.TotalHours,
	})
	if err != nil {
		log.Printf("[resource][update][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	log.Printf("[resource][update][ok] id=%s", id)
	c.JSON(http.StatusOK, updated)
}

// @Summary  Delete a resource
// @Tags     Resources
// @Router   /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[resource][delete] call by member=%s role=%d id=%s", memberID, roleID, id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[resource][delete][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[resource][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}
