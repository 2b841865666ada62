package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"planboard/internal/models"
	"planboard/internal/repositories"
	"planboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService

	// telegram notifications
	notify  *services.NotifyService
	members repositories.TeamMemberRepository
}

func NewTaskHandler(service services.TaskService, notify *services.NotifyService, members repositories.TeamMemberRepository) *TaskHandler {
	return &TaskHandler{service: service, notify: notify, members: members}
}

type taskRequest struct {
	ProjectID       string              `json:"project_id"`
	Name            string              `json:"name" binding:"required"`
	Description     string              `json:"description"`
	StartDate       string              `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate         string              `json:"end_date" binding:"required"`   // YYYY-MM-DD
	AssigneeID      string              `json:"assignee_id"`
	Priority        models.TaskPriority `json:"priority"` // low|medium|high
	Progress        int                 `json:"progress"`
	Blocked         bool                `json:"blocked"`
	BudgetAllocated float64             `json:"budget_allocated"`
	EstimatedHours  float64             `json:"estimated_hours"`
}

func (r *taskRequest) toModel(c *gin.Context) (*models.Task, bool) {
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
	if r.Priority != "" && !isAllowedPriority(r.Priority) {
		c.JSON(http.StatusConflict, gin.H{"error": "unknown priority"})
		return nil, false
	}
	return &models.Task{
		ProjectID:       r.ProjectID,
		Name:            r.Name,
		Description:     r.Description,
		StartDate:       start,
		EndDate:         end,
		AssigneeID:      r.AssigneeID,
		Priority:        r.Priority,
		Progress:        r.Progress,
		Blocked:         r.Blocked,
		BudgetAllocated: r.BudgetAllocated,
		EstimatedHours:  r.EstimatedHours,
	}, true
}

// @Summary  Create a task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Router   /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[task][create] call by member=%s role=%d", memberID, roleID)

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][create][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ProjectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project_id is required"})
		return
	}
	task, ok := req.toModel(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), task)
	if err != nil {
		log.Printf("[task][create][err] %v", err)
		respondServiceError(c, err)
		return
	}
	log.Printf("[task][create][ok] id=%s assignee=%s name=%q", created.ID, created.AssigneeID, created.Name)
	c.JSON(http.StatusCreated, created)

	h.notifyAssignee(c, created, "📌 New task")
}

// @Summary  Get a task
// @Tags     Tasks
// @Produce  json
// @Router   /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	task, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][getByID][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}
	if task == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.JSON(http.StatusOK, task)
}

// @Summary  List tasks
// @Tags     Tasks
// @Produce  json
// @Router   /tasks [get]
func (h *TaskHandler) GetAll(c *gin.Context) {
	var filter models.TaskFilter
	if v, ok := c.GetQuery("project_id"); ok {
		filter.ProjectID = &v
	}
	if v, ok := c.GetQuery("assignee_id"); ok {
		filter.AssigneeID = &v
	}
	if v, ok := c.GetQuery("status"); ok {
		st := models.TaskStatus(v)
		filter.Status = &st
	}
	if v, ok := c.GetQuery("priority"); ok {
		p := models.TaskPriority(v)
		filter.Priority = &p
	}

	tasks, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[task][list][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// @Summary  Update a task
// @Tags     Tasks
// @Accept   json
// @Produce  json
// @Router   /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[task][update] call by member=%s role=%d id=%s", memberID, roleID, id)

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[task][update][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	update, ok := req.toModel(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, update)
	if err != nil {
		log.Printf("[task][update][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][update][ok] id=%s status=%q", id, updated.Status)
	c.JSON(http.StatusOK, updated)

	h.notifyAssignee(c, updated, "✏️ Task updated")
}

// @Summary  Delete a task and its assignments
// @Tags     Tasks
// @Router   /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[task][delete] call by member=%s role=%d id=%s", memberID, roleID, id)

	current, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[task][delete][err] get current id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get task"})
		return
	}
	if current == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[task][delete][err] id=%s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[task][delete][ok] id=%s", id)

	h.notifyAssignee(c, current, "🗑️ Task deleted")

	c.Status(http.StatusNoContent)
}

// POST /tasks/:id/progress { "progress": 45, "blocked": false }
// The status is derived server-side; clients never send it.
func (h *TaskHandler) UpdateProgress(c *gin.Context) {
	id := c.Param("id")
	var body struct {
		Progress *int `json:"progress" binding:"required"`
		Blocked  bool `json:"blocked"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[task][progress][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateProgress(c.Request.Context(), id, *body.Progress, body.Blocked)
	if err != nil {
		log.Printf("[task][progress][err] id=%s: %v", id, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][progress][ok] id=%s progress=%d status=%q", id, updated.Progress, updated.Status)
	c.JSON(http.StatusOK, updated)

	h.notifyAssignee(c, updated, "🔁 Status changed to "+string(updated.Status))
}

// POST /tasks/:id/assign { "assignee_id": "..." }
func (h *TaskHandler) Assign(c *gin.Context) {
	id := c.Param("id")
	memberID, roleID := getMemberAndRole(c)
	log.Printf("[task][assign] call by member=%s role=%d id=%s", memberID, roleID, id)

	var body struct {
		AssigneeID string `json:"assignee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[task][assign][bind][err] %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.UpdateAssignee(c.Request.Context(), id, body.AssigneeID)
	if err != nil {
		log.Printf("[task][assign][err] id=%s -> assignee=%s: %v", id, body.AssigneeID, err)
		respondServiceError(c, err)
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	log.Printf("[task][assign][ok] id=%s assignee=%s", id, body.AssigneeID)
	c.JSON(http.StatusOK, updated)

	h.notifyAssignee(c, updated, "👤 You have been assigned a task")
}

// ---- helpers ----

func isAllowedPriority(p models.TaskPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func (h *TaskHandler) notifyAssignee(c *gin.Context, t *models.Task, prefix string) {
	if h.notify == nil || h.members == nil || t == nil || t.AssigneeID == "" {
		return
	}
	chatID, allow, err := h.members.GetTelegramSettings(c.Request.Context(), t.AssigneeID)
	if err != nil {
		log.Printf("[task][notify][err] get telegram settings assignee=%s: %v", t.AssigneeID, err)
		return
	}
	if !allow || chatID == 0 {
		return
	}
	h.notify.NotifyTask(chatID, prefix, t)
}
