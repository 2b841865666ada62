// internal/models/project.go
package models

import "time"

// ProjectStatus defines the possible statuses for a project.
type ProjectStatus string

const (
	ProjectActive ProjectStatus = "active"
	ProjectPaused ProjectStatus = "paused"
	ProjectClosed ProjectStatus = "closed"
)

// Project represents the structure of a project in the system.
// Closing a project makes its tasks read-only; that rule is enforced by the
// services, not by the record itself.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	TotalBudget float64       `json:"total_budget"`
	ManagerID   string        `json:"manager_id"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectFilter defines the available parameters for filtering projects.
type ProjectFilter struct {
	ManagerID *string
	Status    *ProjectStatus
}
