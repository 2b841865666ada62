package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/models"
)

func newAssignmentServiceForTest(t *testing.T) (AssignmentService, *fakeTaskRepo, *fakeResourceRepo, *fakeAssignmentRepo) {
	t.Helper()
	tasks := newFakeTaskRepo()
	resources := newFakeResourceRepo()
	assignments := newFakeAssignmentRepo()
	svc := NewAssignmentService(assignments, tasks, resources)
	return svc, tasks, resources, assignments
}

func seedTask(t *testing.T, tasks *fakeTaskRepo, id, name string) {
	t.Helper()
	require.NoError(t, tasks.Store(context.Background(), &models.Task{
		ID:        id,
		ProjectID: "p1",
		Name:      name,
		StartDate: d(t, "2025-01-01"),
		EndDate:   d(t, "2025-12-31"),
	}))
}

func seedResource(t *testing.T, resources *fakeResourceRepo, totalHours float64) {
	t.Helper()
	require.NoError(t, resources.Store(context.Background(), &models.Resource{
		ID:         "r1",
		Name:       "Ana",
		Type:       models.ResourceHuman,
		HourlyRate: 50,
		TotalHours: totalHours,
	}))
}

func TestAssignmentCreateHappyPath(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 160)

	created, warnings, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 100,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Empty(t, warnings)

	// the committed-hours cache is recomputed after the write
	res, err := resources.FindByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, res.AssignedHours, 0.001)
	assert.InDelta(t, 60.0, res.AvailableHours, 0.001)
}

func TestAssignmentCreateRejectsHardRules(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 160)

	cases := []struct {
		name       string
		assignment models.ResourceAssignment
		wantMsg    string
	}{
		{
			"zero hours",
			models.ResourceAssignment{TaskID: "t1", ResourceID: "r1", HoursAssigned: 0,
				StartDate: d(t, "2025-02-01"), EndDate: d(t, "2025-02-28")},
			"greater than 0",
		},
		{
			"end before start",
			models.ResourceAssignment{TaskID: "t1", ResourceID: "r1", HoursAssigned: 10,
				StartDate: d(t, "2025-02-28"), EndDate: d(t, "2025-02-01")},
			"end date",
		},
		{
			"missing task",
			models.ResourceAssignment{TaskID: "ghost", ResourceID: "r1", HoursAssigned: 10,
				StartDate: d(t, "2025-02-01"), EndDate: d(t, "2025-02-28")},
			"task does not exist",
		},
		{
			"missing resource",
			models.ResourceAssignment{TaskID: "t1", ResourceID: "ghost", HoursAssigned: 10,
				StartDate: d(t, "2025-02-01"), EndDate: d(t, "2025-02-28")},
			"resource does not exist",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := tc.assignment
			_, _, err := svc.Create(context.Background(), &a)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tc.wantMsg)
		})
	}
}

func TestAssignmentCapacityOverflowWarnsButSaves(t *testing.T) {
	svc, tasks, resources, assignments := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedTask(t, tasks, "t2", "Frontend")
	seedResource(t, resources, 160)

	_, warnings, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 100,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)
	require.Empty(t, warnings)

	// 100 + 80 = 180 > 160: warned, still saved
	created, warnings, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t2",
		ResourceID:    "r1",
		HoursAssigned: 80,
		StartDate:     d(t, "2025-04-01"),
		EndDate:       d(t, "2025-04-30"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0], "Ana")

	stored, err := assignments.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestAssignmentEditExcludesOwnHours(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 160)

	created, _, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 100,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)

	// 120 replaces the stored 100; only 120 counts against the 160 cap
	updated, warnings, err := svc.Update(context.Background(), created.ID, &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 120,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.InDelta(t, 120.0, updated.HoursAssigned, 0.001)

	res, err := resources.FindByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.InDelta(t, 120.0, res.AssignedHours, 0.001)
}

func TestAssignmentDateConflictWarning(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedTask(t, tasks, "t2", "Frontend")
	seedResource(t, resources, 1000)

	_, _, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 40,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)

	// overlapping range on another task names the conflicting task
	_, warnings, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t2",
		ResourceID:    "r1",
		HoursAssigned: 40,
		StartDate:     d(t, "2025-02-15"),
		EndDate:       d(t, "2025-03-15"),
	})
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Backend API")
	assert.Contains(t, warnings[0], "Ana")
}

func TestAssignmentSameTaskNoConflict(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 1000)

	_, _, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 40,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)

	// a second booking on the same task overlaps but is not a conflict
	_, warnings, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 40,
		StartDate:     d(t, "2025-02-10"),
		EndDate:       d(t, "2025-03-10"),
	})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestAssignmentDeleteRefreshesCache(t *testing.T) {
	svc, tasks, resources, _ := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 160)

	created, _, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 100,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	res, err := resources.FindByID(context.Background(), "r1")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, res.AssignedHours, 0.001)
	assert.InDelta(t, 160.0, res.AvailableHours, 0.001)
}

func TestAssignmentCheckConflictsDryRun(t *testing.T) {
	svc, tasks, resources, assignments := newAssignmentServiceForTest(t)
	seedTask(t, tasks, "t1", "Backend API")
	seedResource(t, resources, 1000)

	_, _, err := svc.Create(context.Background(), &models.ResourceAssignment{
		TaskID:        "t1",
		ResourceID:    "r1",
		HoursAssigned: 40,
		StartDate:     d(t, "2025-02-01"),
		EndDate:       d(t, "2025-02-28"),
	})
	require.NoError(t, err)

	result, conflictTasks, err := svc.CheckConflicts(context.Background(), "r1", d(t, "2025-02-20"), d(t, "2025-03-10"), "")
	require.NoError(t, err)
	assert.True(t, result.HasConflict)
	require.Len(t, conflictTasks, 1)
	assert.Equal(t, "Backend API", conflictTasks[0].Name)

	// excluding the booked task clears the conflict
	result, _, err = svc.CheckConflicts(context.Background(), "r1", d(t, "2025-02-20"), d(t, "2025-03-10"), "t1")
	require.NoError(t, err)
	assert.False(t, result.HasConflict)

	// dry run: nothing was written
	all, err := assignments.FindAll(context.Background(), models.AssignmentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
