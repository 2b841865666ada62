package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/models"
	"planboard/internal/services"
)

type AssignmentHandler struct {
	service services.AssignmentService
}

func NewAssignmentHandler(service services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

type assignmentRequest struct {
	TaskID        string  `json:"task_id"`
	ResourceID    string  `json:"resource_id"`
	HoursAssigned float64 `json:"hours_assigned" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
}

func (r *assignmentRequest) toModel(c *gin.Context) (*models.ResourceAssignment, bool) {
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
	return &models.ResourceAssignment{
		TaskID:        r.TaskID,
		ResourceID:    r.ResourceID,
		HoursAssigned: r.HoursAssigned,
		StartDate:     start,
		EndDate:       end,
	}, true
}

// @Summary  Create an assignment
// @Description  Saves the assignment and returns capacity and date-conflict warnings alongside it. Warnings never block the save.
// @Tags     Assignments
// @Accept   json
// @Produce  json
// @Router   /assignments [post]
func (h *AssignmentHandler) Create(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[assignment][create] call by member=%s role=%d", memberID, roleID)

	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[assignment][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TaskID == "" || req.ResourceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task_id and resource_id are required"})
		return
	}
	assignment, ok := req.toModel(c)
	if !ok {
		return
	}

	created, warnings, err := h.service.Create(c.Request.Context(), assignment)
	if err != nil {
		log.Printf("[assignment][create][err] %v", err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[assignment][create][ok] id=%s task=%s resource=%s warnings=%d",
		created.ID, created.TaskID, created.ResourceID, len(warnings))
	c.JSON(http.StatusCreated, gin.H{"assignment": created, "warnings": warnings})
}

// @Summary  Get an assignment
// @Tags     Assignments
// @Produce  json
// @Router   /assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	assignment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[assignment][getByID][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get assignment"})
		return
	}
	if assignment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		return
	}
	c.JSON(http.StatusOK, assignment)
}

// @Summary  List assignments
// @Tags     Assignments
// @Produce  json
// @Router   /assignments [get]
func (h *AssignmentHandler) GetAll(c *gin.Context) {
	var filter models.AssignmentFilter
	if v, ok := c.GetQuery("task_id"); ok {
		filter.TaskID = &v
	}
	if v, ok := c.GetQuery("resource_id"); ok {
		filter.ResourceID = &v
	}

	assignments, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[assignment][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve assignments"})
		return
	}
	c.JSON(http.StatusOK, assignments)
}

// @Summary  Update an assignment
// @Tags     Assignments
// @Accept   json
// @Produce  json
// @Router   /assignments/{id} [put]
func (h *AssignmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[assignment][update] call by member=%s role=%d id=%s", memberID, roleID, id)

	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[assignment][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	assignment, ok := req.toModel(c)
	if !ok {
		return
	}

	updated, warnings, err := h.service.Update(c.Request.Context(), id, assignment)
	if err != nil {
		log.Printf("[assignment][update][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "assignment not found"})
		return
	}
	log.Printf("[assignment][update][ok] id=%s warnings=%d", id, len(warnings))
	c.JSON(http.StatusOK, gin.H{"assignment": updated, "warnings": warnings})
}

// @Summary  Delete an assignment
// @Tags     Assignments
// @Router   /assignments/{id} [delete]
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[assignment][delete] call by member=%s role=%d id=%s", memberID, roleID, id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[assignment][delete][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[assignment][delete][ok] id=%s", id)
	c.Status(http.StatusNoContent)
}

// POST /assignments/check-conflicts
// Dry-run conflict check for forms: nothing is written.
func (h *AssignmentHandler) CheckConflicts(c *gin.Context) {
	var body struct {
		ResourceID    string `json:"resource_id" binding:"required"`
		StartDate     string `json:"start_date" binding:"required"`
		EndDate       string `json:"end_date" binding:"required"`
		ExcludeTaskID string `json:"exclude_task_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[assignment][conflicts][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	start, err := parseDate(body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date (YYYY-MM-DD)"})
		return
	}
	end, err := parseDate(body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date (YYYY-MM-DD)"})
		return
	}

	result, tasks, err := h.service.CheckConflicts(c.Request.Context(), body.ResourceID, start, end, body.ExcludeTaskID)
	if err != nil {
		log.Printf("[assignment][conflicts][err] resource=%s: %v", body.ResourceID, err)
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"has_conflict":            result.HasConflict,
		"conflicting_assignments": result.Conflicting,
		"conflicting_tasks":       tasks,
	})
}
