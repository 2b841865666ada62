package planning

import "planboard/internal/models"

// Workload summarizes a team member's task load.
type Workload struct {
	MemberID       string  `json:"member_id"`
	EstimatedHours float64 `json:"estimated_hours"`
	TaskCount      int     `json:"task_count"`
	CompletedCount int     `json:"completed_count"`
}

// ProjectProgress is the hours-weighted average progress over tasks. Tasks
// with more estimated effort move the percentage more than trivial ones.
// Returns 0 when the task list is empty or total estimated hours is 0.
func ProjectProgress(tasks []models.Task) float64 {
	var weighted, totalHours float64
	for _, t := range tasks {
		weighted += float64(t.Progress) * t.EstimatedHours
		totalHours += t.EstimatedHours
	}
	if totalHours == 0 {
		return 0
	}
	return weighted / totalHours
}

// PlannedCost sums hours_assigned × hourly_rate over the assignments that
// belong to the given tasks. Assignments whose resource is missing from the
// snapshot contribute nothing; an orphan is never an error here.
func PlannedCost(tasks []models.Task, assignments []models.ResourceAssignment, resources []models.Resource) float64 {
	taskIDs := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taskIDs[t.ID] = true
	}
	rateByID := make(map[string]float64, len(resources))
	for _, r := range resources {
		rateByID[r.ID] = r.HourlyRate
	}
	var total float64
	for _, a := range assignments {
		if !taskIDs[a.TaskID] {
			continue
		}
		rate, found := rateByID[a.ResourceID]
		if !found {
			continue
		}
		total += a.HoursAssigned * rate
	}
	return total
}

// ActualCost currently coincides with PlannedCost: the model carries a
// single hours_assigned field and no separate record of hours actually
// worked. Kept as its own function so an actuals feed can replace the
// computation without touching callers.
func ActualCost(tasks []models.Task, assignments []models.ResourceAssignment, resources []models.Resource) float64 {
	return PlannedCost(tasks, assignments, resources)
}

// BudgetVariance is planned minus actual cost.
func BudgetVariance(planned, actual float64) float64 {
	return planned - actual
}

// Utilization is assigned capacity as a percentage. Guarded to 0 at zero
// capacity. The raw value may exceed 100 and is reported as such; clamping
// for display is the UI's business.
func Utilization(resource models.Resource) float64 {
	if resource.TotalHours == 0 {
		return 0
	}
	return resource.AssignedHours / resource.TotalHours * 100
}

// AssignedHours recomputes the committed-hours cache for a resource from
// the assignment snapshot.
func AssignedHours(resourceID string, assignments []models.ResourceAssignment) float64 {
	var total float64
	for _, a := range assignments {
		if a.ResourceID == resourceID {
			total += a.HoursAssigned
		}
	}
	return total
}

// MemberWorkload sums estimated hours and counts over the member's tasks.
func MemberWorkload(memberID string, tasks []models.Task) Workload {
	w := Workload{MemberID: memberID}
	for _, t := range tasks {
		if t.AssigneeID != memberID {
			continue
		}
		w.EstimatedHours += t.EstimatedHours
		w.TaskCount++
		if t.Completed {
			w.CompletedCount++
		}
	}
	return w
}

// RemainingBudget is the project budget minus the allocations of its tasks.
// May go negative; callers render that as an error state, never clamp it.
func RemainingBudget(project models.Project, tasks []models.Task) float64 {
	remaining := project.TotalBudget
	for _, t := range tasks {
		if t.ProjectID == project.ID {
			remaining -= t.BudgetAllocated
		}
	}
	return remaining
}
