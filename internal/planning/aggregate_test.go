package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"planboard/internal/models"
)

func TestProjectProgressWeighted(t *testing.T) {
	tasks := []models.Task{
		{Progress: 100, EstimatedHours: 10},
		{Progress: 0, EstimatedHours: 30},
	}
	// (100*10 + 0*30) / 40
	assert.InDelta(t, 25, ProjectProgress(tasks), 1e-9)
}

func TestProjectProgressGuards(t *testing.T) {
	assert.Equal(t, 0.0, ProjectProgress(nil))
	assert.Equal(t, 0.0, ProjectProgress([]models.Task{}))
	// zero-hour tasks must not produce NaN
	assert.Equal(t, 0.0, ProjectProgress([]models.Task{{Progress: 50, EstimatedHours: 0}}))
}

func TestPlannedCost(t *testing.T) {
	tasks := []models.Task{{ID: "t1"}, {ID: "t2"}}
	resources := []models.Resource{
		{ID: "r1", HourlyRate: 50},
		{ID: "r2", HourlyRate: 10},
	}
	assignments := []models.ResourceAssignment{
		{TaskID: "t1", ResourceID: "r1", HoursAssigned: 10}, // 500
		{TaskID: "t2", ResourceID: "r2", HoursAssigned: 8},  // 80
		{TaskID: "other", ResourceID: "r1", HoursAssigned: 100},
	}
	assert.InDelta(t, 580, PlannedCost(tasks, assignments, resources), 1e-9)
}

func TestPlannedCostSkipsMissingResource(t *testing.T) {
	tasks := []models.Task{{ID: "t1"}}
	assignments := []models.ResourceAssignment{
		{TaskID: "t1", ResourceID: "deleted", HoursAssigned: 40},
		{TaskID: "t1", ResourceID: "r1", HoursAssigned: 2},
	}
	resources := []models.Resource{{ID: "r1", HourlyRate: 100}}
	// orphaned assignment contributes zero, never panics
	assert.InDelta(t, 200, PlannedCost(tasks, assignments, resources), 1e-9)
}

func TestActualCostCoincidesWithPlanned(t *testing.T) {
	tasks := []models.Task{{ID: "t1"}}
	assignments := []models.ResourceAssignment{{TaskID: "t1", ResourceID: "r1", HoursAssigned: 5}}
	resources := []models.Resource{{ID: "r1", HourlyRate: 20}}

	planned := PlannedCost(tasks, assignments, resources)
	actual := ActualCost(tasks, assignments, resources)
	assert.Equal(t, planned, actual)
	assert.Equal(t, 0.0, BudgetVariance(planned, actual))
}

func TestUtilization(t *testing.T) {
	assert.InDelta(t, 75, Utilization(models.Resource{TotalHours: 160, AssignedHours: 120}), 1e-9)
	// over-utilization reported raw, not capped
	assert.InDelta(t, 125, Utilization(models.Resource{TotalHours: 160, AssignedHours: 200}), 1e-9)
	// zero capacity guard: 0, never NaN or Inf
	assert.Equal(t, 0.0, Utilization(models.Resource{TotalHours: 0, AssignedHours: 40}))
}

func TestAssignedHours(t *testing.T) {
	assignments := []models.ResourceAssignment{
		{ResourceID: "r1", HoursAssigned: 10},
		{ResourceID: "r1", HoursAssigned: 15},
		{ResourceID: "r2", HoursAssigned: 99},
	}
	assert.InDelta(t, 25, AssignedHours("r1", assignments), 1e-9)
	assert.Equal(t, 0.0, AssignedHours("missing", assignments))
}

func TestMemberWorkload(t *testing.T) {
	tasks := []models.Task{
		{AssigneeID: "m1", EstimatedHours: 8, Completed: true},
		{AssigneeID: "m1", EstimatedHours: 16},
		{AssigneeID: "m2", EstimatedHours: 40},
	}
	w := MemberWorkload("m1", tasks)
	assert.InDelta(t, 24, w.EstimatedHours, 1e-9)
	assert.Equal(t, 2, w.TaskCount)
	assert.Equal(t, 1, w.CompletedCount)

	empty := MemberWorkload("nobody", tasks)
	assert.Equal(t, 0, empty.TaskCount)
	assert.Equal(t, 0.0, empty.EstimatedHours)
}

func TestRemainingBudgetMayGoNegative(t *testing.T) {
	project := models.Project{ID: "p1", TotalBudget: 1000}
	tasks := []models.Task{
		{ProjectID: "p1", BudgetAllocated: 700},
		{ProjectID: "p1", BudgetAllocated: 500},
		{ProjectID: "p2", BudgetAllocated: 9999},
	}
	assert.InDelta(t, -200, RemainingBudget(project, tasks), 1e-9)
}
