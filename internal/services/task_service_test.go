package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/models"
)

func d(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func seedProject(t *testing.T, projects *fakeProjectRepo, budget float64) *models.Project {
	t.Helper()
	p := &models.Project{
		ID:          "p1",
		Name:        "Website relaunch",
		StartDate:   d(t, "2025-01-01"),
		EndDate:     d(t, "2025-12-31"),
		TotalBudget: budget,
		ManagerID:   "m1",
		Status:      models.ProjectActive,
	}
	require.NoError(t, projects.Store(context.Background(), p))
	return p
}

func newTaskServiceForTest(t *testing.T) (TaskService, *fakeProjectRepo, *fakeTaskRepo, *fakeMemberRepo, *fakeAssignmentRepo) {
	t.Helper()
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	members := newFakeMemberRepo()
	assignments := newFakeAssignmentRepo()
	svc := NewTaskService(tasks, projects, members, assignments)
	return svc, projects, tasks, members, assignments
}

func validTask(t *testing.T) *models.Task {
	t.Helper()
	return &models.Task{
		ProjectID:       "p1",
		Name:            "Design homepage",
		StartDate:       d(t, "2025-02-01"),
		EndDate:         d(t, "2025-03-01"),
		Progress:        0,
		BudgetAllocated: 1000,
		EstimatedHours:  40,
	}
}

func TestTaskCreateDerivesStatus(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	cases := []struct {
		name     string
		progress int
		blocked  bool
		want     models.TaskStatus
	}{
		{"fresh", 0, false, models.StatusNotStarted},
		{"underway", 45, false, models.StatusInProgress},
		{"stuck", 45, true, models.StatusBlocked},
		{"blocked at zero", 0, true, models.StatusBlocked},
		{"done", 100, false, models.StatusCompleted},
		{"done wins over blocked", 100, true, models.StatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := validTask(t)
			task.Progress = tc.progress
			task.Blocked = tc.blocked

			created, err := svc.Create(context.Background(), task)
			require.NoError(t, err)
			assert.Equal(t, tc.want, created.Status)
			if tc.progress >= 100 {
				assert.True(t, created.Completed)
				assert.False(t, created.Blocked, "finished tasks must not stay blocked")
			}
		})
	}
}

func TestTaskCreateRejectsProgressOutOfRange(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	for _, progress := range []int{-1, 101, 150} {
		task := validTask(t)
		task.Progress = progress

		_, err := svc.Create(context.Background(), task)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Error(), "between 0 and 100")
	}
}

func TestTaskCreateRejectsDatesOutsideProject(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	task := validTask(t)
	task.StartDate = d(t, "2024-12-15")
	task.EndDate = d(t, "2025-01-15")

	_, err := svc.Create(context.Background(), task)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "01.01.2025")
	assert.Contains(t, verr.Error(), "31.12.2025")
}

func TestTaskCreateRejectsEndBeforeStart(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	task := validTask(t)
	task.StartDate = d(t, "2025-03-01")
	task.EndDate = d(t, "2025-02-01")

	_, err := svc.Create(context.Background(), task)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTaskBudgetContainment(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 1000)

	first := validTask(t)
	first.BudgetAllocated = 300
	_, err := svc.Create(context.Background(), first)
	require.NoError(t, err)

	second := validTask(t)
	second.Name = "Write copy"
	second.BudgetAllocated = 400
	_, err = svc.Create(context.Background(), second)
	require.NoError(t, err)

	// 300 + 400 committed, 200 more fits
	third := validTask(t)
	third.Name = "QA pass"
	third.BudgetAllocated = 200
	_, err = svc.Create(context.Background(), third)
	require.NoError(t, err)

	// a fourth 400 would push the total to 1300
	fourth := validTask(t)
	fourth.Name = "Overrun"
	fourth.BudgetAllocated = 400
	_, err = svc.Create(context.Background(), fourth)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotNil(t, verr.Remaining)
	assert.InDelta(t, -300.0, *verr.Remaining, 0.001)
}

func TestTaskBudgetExcludesOwnAllocationOnEdit(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 1000)

	task := validTask(t)
	task.BudgetAllocated = 600
	created, err := svc.Create(context.Background(), task)
	require.NoError(t, err)

	// raising its own budget to 900 must not count the stored 600 twice
	update := validTask(t)
	update.BudgetAllocated = 900
	updated, err := svc.Update(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.InDelta(t, 900.0, updated.BudgetAllocated, 0.001)
}

func TestTaskCreateRejectsClosedProject(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	p := seedProject(t, projects, 100000)
	require.NoError(t, projects.UpdateStatus(context.Background(), p.ID, models.ProjectClosed))

	_, err := svc.Create(context.Background(), validTask(t))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "closed")
}

func TestTaskCreateRejectsUnknownAssignee(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	task := validTask(t)
	task.AssigneeID = "ghost"

	_, err := svc.Create(context.Background(), task)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "assignee")
}

func TestTaskUpdateProgressClearsBlockedAtHundred(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	task := validTask(t)
	task.Progress = 45
	task.Blocked = true
	created, err := svc.Create(context.Background(), task)
	require.NoError(t, err)
	require.Equal(t, models.StatusBlocked, created.Status)

	updated, err := svc.UpdateProgress(context.Background(), created.ID, 100, true)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.False(t, updated.Blocked)
	assert.True(t, updated.Completed)
}

func TestTaskUpdateProgressRejectsOutOfRange(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	created, err := svc.Create(context.Background(), validTask(t))
	require.NoError(t, err)

	_, err = svc.UpdateProgress(context.Background(), created.ID, 101, false)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestTaskUpdateProgressMissingTask(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	updated, err := svc.UpdateProgress(context.Background(), "missing", 50, false)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestTaskDeleteRemovesAssignments(t *testing.T) {
	svc, projects, _, _, assignments := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	created, err := svc.Create(context.Background(), validTask(t))
	require.NoError(t, err)

	require.NoError(t, assignments.Store(context.Background(), &models.ResourceAssignment{
		ID:            "a1",
		TaskID:        created.ID,
		ResourceID:    "r1",
		HoursAssigned: 10,
		StartDate:     created.StartDate,
		EndDate:       created.EndDate,
	}))

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	left, err := assignments.FindAll(context.Background(), models.AssignmentFilter{})
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestTaskProjectIDImmutableOnUpdate(t *testing.T) {
	svc, projects, _, _, _ := newTaskServiceForTest(t)
	seedProject(t, projects, 100000)

	created, err := svc.Create(context.Background(), validTask(t))
	require.NoError(t, err)

	update := validTask(t)
	update.ProjectID = "p2"
	updated, err := svc.Update(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ProjectID)
}

func TestValidationErrorUnwrapsWithErrorsAs(t *testing.T) {
	err := error(validationErr("something is off"))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))
	assert.Nil(t, verr.Remaining)
}
