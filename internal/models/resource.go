// internal/models/resource.go
package models

// ResourceType defines what kind of resource is being allocated.
type ResourceType string

const (
	ResourceHuman          ResourceType = "human"
	ResourceSoftware       ResourceType = "software"
	ResourceInfrastructure ResourceType = "infrastructure"
)

// Resource represents an allocatable resource with an hourly cost and a
// total capacity in hours. AssignedHours is a cache recomputed from the
// assignments table after every assignment write; AvailableHours is filled
// in by the repository on read and is never stored.
type Resource struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Type           ResourceType `json:"type"`
	HourlyRate     float64      `json:"hourly_rate"`
	TotalHours     float64      `json:"total_hours"`
	AssignedHours  float64      `json:"assigned_hours"`
	AvailableHours float64      `json:"available_hours"`
}

// ResourceFilter defines the available parameters for filtering resources.
type ResourceFilter struct {
	Type *ResourceType
}
