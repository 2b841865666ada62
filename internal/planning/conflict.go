package planning

import (
	"time"

	"planboard/internal/models"
)

// ConflictResult carries the conflicting assignment records, not just a
// boolean, so the caller can name the tasks involved.
type ConflictResult struct {
	HasConflict bool                        `json:"has_conflict"`
	Conflicting []models.ResourceAssignment `json:"conflicting_assignments"`
}

// OverAllocation classifies a resource with at least one pair of
// overlapping assignments, together with the tasks implicated in any
// conflicting pair.
type OverAllocation struct {
	Resource models.Resource `json:"resource"`
	Tasks    []models.Task   `json:"tasks"`
}

// Overlaps reports whether two inclusive date ranges overlap. A shared
// boundary day counts as overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// CheckResourceConflicts finds assignments of the given resource whose date
// range overlaps the candidate range. Assignments belonging to excludeTaskID
// are skipped so editing a task's own assignment never conflicts with
// itself. Advisory only: callers surface conflicts as warnings, never as a
// hard block.
func CheckResourceConflicts(resourceID string, candidateStart, candidateEnd time.Time, excludeTaskID string, assignments []models.ResourceAssignment) ConflictResult {
	var conflicting []models.ResourceAssignment
	for _, a := range assignments {
		if a.ResourceID != resourceID {
			continue
		}
		if excludeTaskID != "" && a.TaskID == excludeTaskID {
			continue
		}
		if Overlaps(candidateStart, candidateEnd, a.StartDate, a.EndDate) {
			conflicting = append(conflicting, a)
		}
	}
	return ConflictResult{HasConflict: len(conflicting) > 0, Conflicting: conflicting}
}

// OverAllocatedResources scans every resource for pairs of overlapping
// assignments. O(n²) per resource; assignment counts per resource are small.
// Tasks referenced by a conflicting pair are collected once each; orphaned
// task references are skipped.
func OverAllocatedResources(resources []models.Resource, assignments []models.ResourceAssignment, tasks []models.Task) []OverAllocation {
	byResource := make(map[string][]models.ResourceAssignment)
	for _, a := range assignments {
		byResource[a.ResourceID] = append(byResource[a.ResourceID], a)
	}
	taskByID := make(map[string]models.Task, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}

	var out []OverAllocation
	for _, r := range resources {
		list := byResource[r.ID]
		seen := make(map[string]bool)
		var implicated []models.Task
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				if !Overlaps(list[i].StartDate, list[i].EndDate, list[j].StartDate, list[j].EndDate) {
					continue
				}
				for _, id := range []string{list[i].TaskID, list[j].TaskID} {
					if seen[id] {
						continue
					}
					seen[id] = true
					if t, found := taskByID[id]; found {
						implicated = append(implicated, t)
					}
				}
			}
		}
		if len(seen) > 0 {
			out = append(out, OverAllocation{Resource: r, Tasks: implicated})
		}
	}
	return out
}
