// internal/models/task.go
package models

import "time"

// TaskStatus defines the possible statuses for a task. The status is derived
// from progress and the blocked flag (see planning.DeriveStatus), never set
// directly by clients.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusBlocked    TaskStatus = "blocked"
	StatusCompleted  TaskStatus = "completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Task represents the structure of a task in the system.
// Completed is true iff Progress == 100 and is kept in sync on every write.
type Task struct {
	ID              string       `json:"id"`
	ProjectID       string       `json:"project_id"`
	Name            string       `json:"name"`
	Description     string       `json:"description"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	AssigneeID      string       `json:"assignee_id"`
	Priority        TaskPriority `json:"priority"`
	Status          TaskStatus   `json:"status"`
	Completed       bool         `json:"completed"`
	Blocked         bool         `json:"blocked"`
	Progress        int          `json:"progress"`
	BudgetAllocated float64      `json:"budget_allocated"`
	EstimatedHours  float64      `json:"estimated_hours"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// TaskFilter defines the available parameters for filtering tasks.
type TaskFilter struct {
	ProjectID  *string
	AssigneeID *string
	Status     *TaskStatus
	Priority   *TaskPriority
}
