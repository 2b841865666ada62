// internal/models/assignment.go
package models

import "time"

// ResourceAssignment commits a resource's hours to a task over a date range.
// This is the bridge record every conflict and utilization computation
// runs over.
type ResourceAssignment struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"task_id"`
	ResourceID    string    `json:"resource_id"`
	HoursAssigned float64   `json:"hours_assigned"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AssignmentFilter defines the available parameters for filtering assignments.
type AssignmentFilter struct {
	TaskID     *string
	ResourceID *string
}
