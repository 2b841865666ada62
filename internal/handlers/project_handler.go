package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/models"
	"planboard/internal/services"
)

type ProjectHandler struct {
	service services.ProjectService
}

func NewProjectHandler(service services.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
	TotalBudget float64 `json:"total_budget"`
	ManagerID   string  `json:"manager_id"`
}

func (r *projectRequest) toModel(c *gin.Context) (*models.Project, bool) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date (YYYY-MM-DD)"})
		return nil, false
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date (YYYY-MM-DD)"})
		return nil, false
	}
	return &models.Project{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
		TotalBudget: r.TotalBudget,
		ManagerID:   r.ManagerID,
	}, true
}

// @Summary  Create a project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Router   /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[project][create] call by member=%s role=%d", memberID, roleID)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, ok := req.toModel(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), project)
	if err != nil {
		log.Printf("[project][create][err] %v", err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[project][create][ok] id=%s name=%q", created.ID, created.Name)
	c.JSON(http.StatusCreated, created)
}

// @Summary  Get a project
// @Tags     Projects
// @Produce  json
// @Router   /projects/{id} [get]
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	project, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[project][getByID][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get project"})
		return
	}
	if project == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// @Summary  List projects
// @Tags     Projects
// @Produce  json
// @Router   /projects [get]
func (h *ProjectHandler) GetAll(c *gin.Context) {
	var filter models.ProjectFilter
	if v, ok := c.GetQuery("manager_id"); ok {
		filter.ManagerID = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		st := models.ProjectStatus(v)
		filter.Status = &st
	}

	projects, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[project][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve projects"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// @Summary  Update a project
// @Tags     Projects
// @Accept   json
// @Produce  json
// @Router   /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[project][update] call by member=%s role=%d id=%s", memberID, roleID, id)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[project][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update, ok := req.toModel(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		log.Printf("[project][update][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	log.Printf("[project][update][ok] id=%s", id)
	c.JSON(http.StatusOK, updated)
}

// @Summary  Delete a project and its tasks/assignments
// @Tags     Projects
// @Router   /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[project][delete] call by member=%s role=%d id=%s", memberID, roleID, id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[project][delete][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[project][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /projects/:id/status { "to": "closed" }
func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		To models.ProjectStatus `json:"to" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch body.To {
	case models.ProjectActive, models.ProjectPaused, models.ProjectClosed:
	default:
		c.JSON(http.StatusConflict, gin.H{"error": "unknown project status"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, body.To)
	if err != nil {
		log.Printf("[project][status][err] id=%s to=%q: %v", id, body.To, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return
	}
	log.Printf("[project][status][ok] id=%s new=%q", id, body.To)
	c.JSON(http.StatusOK, updated)
}
