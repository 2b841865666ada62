package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planboard/internal/models"
)

func TestOverlapsInclusiveBoundary(t *testing.T) {
	// a shared endpoint day counts as a conflict
	assert.True(t, Overlaps(
		d(t, "2025-01-01"), d(t, "2025-01-10"),
		d(t, "2025-01-10"), d(t, "2025-01-20")))

	assert.False(t, Overlaps(
		d(t, "2025-01-01"), d(t, "2025-01-09"),
		d(t, "2025-01-10"), d(t, "2025-01-20")))

	assert.True(t, Overlaps(
		d(t, "2025-01-05"), d(t, "2025-01-15"),
		d(t, "2025-01-01"), d(t, "2025-01-31")))
}

func TestCheckResourceConflicts(t *testing.T) {
	assignments := []models.ResourceAssignment{
		{ID: "a1", TaskID: "t1", ResourceID: "r1",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-01-10")},
		{ID: "a2", TaskID: "t2", ResourceID: "r1",
			StartDate: d(t, "2025-02-01"), EndDate: d(t, "2025-02-10")},
		{ID: "a3", TaskID: "t3", ResourceID: "r2",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-12-31")},
	}

	got := CheckResourceConflicts("r1", d(t, "2025-01-05"), d(t, "2025-01-20"), "", assignments)
	assert.True(t, got.HasConflict)
	if assert.Len(t, got.Conflicting, 1) {
		assert.Equal(t, "a1", got.Conflicting[0].ID)
	}

	// other resources never conflict
	got = CheckResourceConflicts("r1", d(t, "2025-03-01"), d(t, "2025-03-10"), "", assignments)
	assert.False(t, got.HasConflict)
	assert.Empty(t, got.Conflicting)
}

func TestCheckResourceConflictsExcludesOwnTask(t *testing.T) {
	assignments := []models.ResourceAssignment{
		{ID: "a1", TaskID: "t1", ResourceID: "r1",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-01-10")},
	}
	// editing t1's own assignment: no self-conflict
	got := CheckResourceConflicts("r1", d(t, "2025-01-01"), d(t, "2025-01-10"), "t1", assignments)
	assert.False(t, got.HasConflict)
}

func TestCheckResourceConflictsSymmetry(t *testing.T) {
	a := models.ResourceAssignment{ID: "a", TaskID: "ta", ResourceID: "r1",
		StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-01-10")}
	b := models.ResourceAssignment{ID: "b", TaskID: "tb", ResourceID: "r1",
		StartDate: d(t, "2025-01-10"), EndDate: d(t, "2025-01-20")}
	all := []models.ResourceAssignment{a, b}

	fromA := CheckResourceConflicts("r1", a.StartDate, a.EndDate, a.TaskID, all)
	fromB := CheckResourceConflicts("r1", b.StartDate, b.EndDate, b.TaskID, all)

	assert.True(t, fromA.HasConflict)
	assert.True(t, fromB.HasConflict)
	assert.Equal(t, "b", fromA.Conflicting[0].ID)
	assert.Equal(t, "a", fromB.Conflicting[0].ID)
}

func TestOverAllocatedResources(t *testing.T) {
	resources := []models.Resource{
		{ID: "r1", Name: "designer"},
		{ID: "r2", Name: "build server"},
	}
	tasks := []models.Task{
		{ID: "t1", Name: "landing page"},
		{ID: "t2", Name: "brand refresh"},
		{ID: "t3", Name: "nightly builds"},
	}
	assignments := []models.ResourceAssignment{
		// r1: two overlapping assignments across t1/t2
		{ID: "a1", TaskID: "t1", ResourceID: "r1",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-01-31")},
		{ID: "a2", TaskID: "t2", ResourceID: "r1",
			StartDate: d(t, "2025-01-15"), EndDate: d(t, "2025-02-15")},
		// r2: single assignment, never over-assigned
		{ID: "a3", TaskID: "t3", ResourceID: "r2",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-12-31")},
	}

	got := OverAllocatedResources(resources, assignments, tasks)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "r1", got[0].Resource.ID)
		assert.Len(t, got[0].Tasks, 2)
	}
}

func TestOverAllocatedResourcesDeduplicatesTasks(t *testing.T) {
	resources := []models.Resource{{ID: "r1"}}
	tasks := []models.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}
	// three mutually overlapping assignments: each task listed once
	assignments := []models.ResourceAssignment{
		{ID: "a1", TaskID: "t1", ResourceID: "r1",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-03-01")},
		{ID: "a2", TaskID: "t2", ResourceID: "r1",
			StartDate: d(t, "2025-01-15"), EndDate: d(t, "2025-02-15")},
		{ID: "a3", TaskID: "t3", ResourceID: "r1",
			StartDate: d(t, "2025-02-01"), EndDate: d(t, "2025-02-28")},
	}

	got := OverAllocatedResources(resources, assignments, tasks)
	if assert.Len(t, got, 1) {
		assert.Len(t, got[0].Tasks, 3)
	}
}

func TestOverAllocatedResourcesSkipsOrphanTasks(t *testing.T) {
	resources := []models.Resource{{ID: "r1"}}
	// t2 was deleted from the snapshot; the resource is still flagged but
	// only the surviving task is listed
	tasks := []models.Task{{ID: "t1"}}
	assignments := []models.ResourceAssignment{
		{ID: "a1", TaskID: "t1", ResourceID: "r1",
			StartDate: d(t, "2025-01-01"), EndDate: d(t, "2025-01-31")},
		{ID: "a2", TaskID: "t2", ResourceID: "r1",
			StartDate: d(t, "2025-01-15"), EndDate: d(t, "2025-02-15")},
	}

	got := OverAllocatedResources(resources, assignments, tasks)
	if assert.Len(t, got, 1) {
		assert.Len(t, got[0].Tasks, 1)
		assert.Equal(t, "t1", got[0].Tasks[0].ID)
	}
}
