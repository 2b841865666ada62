// Package planning holds the resource-allocation rules: validation of
// candidate edits, date-overlap conflict detection, metric aggregation and
// task status derivation. Every function is pure and operates on snapshot
// slices handed in by the caller; nothing in here touches a repository or
// mutates its input.
package planning

import (
	"fmt"
	"time"

	"planboard/internal/models"
)

// Result is the outcome of a single validation rule. Rules never return Go
// errors for expected failures; a failed rule means Valid=false plus a
// human-readable message.
type Result struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// BudgetResult also reports the remaining headroom, valid or not, so the
// caller can show both the error and how much budget is left.
type BudgetResult struct {
	Valid     bool    `json:"valid"`
	Error     string  `json:"error,omitempty"`
	Remaining float64 `json:"remaining"`
}

// HoursResult mirrors BudgetResult for resource capacity.
type HoursResult struct {
	Valid     bool    `json:"valid"`
	Error     string  `json:"error,omitempty"`
	Remaining float64 `json:"remaining"`
}

func ok() Result { return Result{Valid: true} }

func fail(format string, args ...interface{}) Result {
	return Result{Valid: false, Error: fmt.Sprintf(format, args...)}
}

// ValidateTaskProgress checks the 0..100 bound.
func ValidateTaskProgress(progress int) Result {
	if progress < 0 || progress > 100 {
		return fail("progress must be between 0 and 100")
	}
	return ok()
}

// ValidateDateOrder checks start <= end. Callers run this before the
// containment rule below; the containment rule does not repeat it.
func ValidateDateOrder(start, end time.Time) Result {
	if start.After(end) {
		return fail("start date must not be after end date")
	}
	return ok()
}

// ValidateTaskDates checks that the task range lies within the parent
// project's range. The message names the project range so the form can show
// the user what to aim for.
func ValidateTaskDates(taskStart, taskEnd, projectStart, projectEnd time.Time) Result {
	if taskStart.Before(projectStart) || taskEnd.After(projectEnd) {
		return fail("task dates must lie within the project range %s to %s",
			FormatDate(projectStart), FormatDate(projectEnd))
	}
	return ok()
}

// ValidateProjectBudget checks that the sum of sibling task allocations plus
// the candidate budget stays within the project budget. currentTaskID is the
// task being edited ("" on create); its stored allocation is excluded so the
// edit is not counted twice.
func ValidateProjectBudget(projectBudget float64, tasks []models.Task, currentTaskID string, currentBudget float64) BudgetResult {
	total := currentBudget
	for _, t := range tasks {
		if currentTaskID != "" && t.ID == currentTaskID {
			continue
		}
		total += t.BudgetAllocated
	}
	res := BudgetResult{
		Valid:     total <= projectBudget,
		Remaining: projectBudget - total,
	}
	if !res.Valid {
		res.Error = fmt.Sprintf("allocated budget %s exceeds project budget %s",
			FormatCurrency(total), FormatCurrency(projectBudget))
	}
	return res
}

// ValidateResourceHours checks the candidate hours against the resource's
// total capacity. The single contract for both the task form and the direct
// assignment flow: assignments matching excludeAssignmentID are removed from
// the committed sum before the candidate hours are added, so editing an
// existing assignment never double-counts its own prior hours.
// Capacity overflow is a soft rule; callers surface it as a warning.
func ValidateResourceHours(resource models.Resource, assignments []models.ResourceAssignment, newHours float64, excludeAssignmentID string) HoursResult {
	total := newHours
	for _, a := range assignments {
		if a.ResourceID != resource.ID {
			continue
		}
		if excludeAssignmentID != "" && a.ID == excludeAssignmentID {
			continue
		}
		total += a.HoursAssigned
	}
	res := HoursResult{
		Valid:     total <= resource.TotalHours,
		Remaining: resource.TotalHours - total,
	}
	if !res.Valid {
		res.Error = fmt.Sprintf("%.1fh requested but %s has %.1fh capacity",
			total, resource.Name, resource.TotalHours)
	}
	return res
}
