package services

import (
	"context"
	"time"

	"planboard/internal/models"
	"planboard/internal/planning"
	"planboard/internal/repositories"
	"planboard/internal/utils"
)

// TaskService defines the interface for task-related business logic. Hard
// validations (progress bounds, date order, dates within the project range,
// budget containment, required relations) run before every save; the task
// status is always derived from progress and the blocked flag, never taken
// from the caller.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Update(ctx context.Context, id string, updateData *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	UpdateProgress(ctx context.Context, id string, progress int, blocked bool) (*models.Task, error)
	UpdateAssignee(ctx context.Context, id string, assigneeID string) (*models.Task, error)
}

type taskService struct {
	repo        repositories.TaskRepository
	projects    repositories.ProjectRepository
	members     repositories.TeamMemberRepository
	assignments repositories.AssignmentRepository
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(
	repo repositories.TaskRepository,
	projects repositories.ProjectRepository,
	members repositories.TeamMemberRepository,
	assignments repositories.AssignmentRepository,
) TaskService {
	return &taskService{repo: repo, projects: projects, members: members, assignments: assignments}
}

// validate runs every hard rule for a candidate task. excludeTaskID is the
// task being edited ("" on create) so budget containment does not count the
// task's own stored allocation twice.
func (s *taskService) validate(ctx context.Context, task *models.Task, excludeTaskID string) error {
	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return err
	}
	if project == nil {
		return validationErr("project does not exist")
	}
	if project.Status == models.ProjectClosed {
		return validationErr("project is closed; its tasks are read-only")
	}

	if res := planning.ValidateTaskProgress(task.Progress); !res.Valid {
		return validationErr(res.Error)
	}
	if res := planning.ValidateDateOrder(task.StartDate, task.EndDate); !res.Valid {
		return validationErr(res.Error)
	}
	if res := planning.ValidateTaskDates(task.StartDate, task.EndDate, project.StartDate, project.EndDate); !res.Valid {
		return validationErr(res.Error)
	}
	if task.BudgetAllocated < 0 {
		return validationErr("budget allocated must not be negative")
	}
	if task.EstimatedHours < 0 {
		return validationErr("estimated hours must not be negative")
	}

	if task.AssigneeID != "" {
		assignee, err := s.members.FindByID(ctx, task.AssigneeID)
		if err != nil {
			return err
		}
		if assignee == nil {
			return validationErr("assignee does not exist")
		}
	}

	projectID := task.ProjectID
	siblings, err := s.repo.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return err
	}
	if check := planning.ValidateProjectBudget(project.TotalBudget, siblings, excludeTaskID, task.BudgetAllocated); !check.Valid {
		return validationErrRemaining(check.Error, check.Remaining)
	}
	return nil
}

// deriveState recomputes status and the completed flag; once progress hits
// 100 the blocked flag is cleared so a finished task can never read as stuck.
func deriveState(task *models.Task) {
	if task.Progress >= 100 {
		task.Blocked = false
	}
	task.Status = planning.DeriveStatus(task.Progress, task.Blocked)
	task.Completed = task.Progress >= 100
}

func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := s.validate(ctx, task, ""); err != nil {
		return nil, err
	}
	deriveState(task)

	task.ID = utils.NewID()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) GetAll(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *taskService) Update(ctx context.Context, id string, updateData *models.Task) (*models.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	// project_id is immutable after creation
	existing.Name = updateData.Name
	existing.Description = updateData.Description
	existing.StartDate = updateData.StartDate
	existing.EndDate = updateData.EndDate
	existing.AssigneeID = updateData.AssigneeID
	existing.Priority = updateData.Priority
	existing.Progress = updateData.Progress
	existing.Blocked = updateData.Blocked
	existing.BudgetAllocated = updateData.BudgetAllocated
	existing.EstimatedHours = updateData.EstimatedHours

	if err := s.validate(ctx, existing, existing.ID); err != nil {
		return nil, err
	}
	deriveState(existing)

	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes the task and its resource assignments.
func (s *taskService) Delete(ctx context.Context, id string) error {
	if err := s.assignments.DeleteByTask(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *taskService) UpdateProgress(ctx context.Context, id string, progress int, blocked bool) (*models.Task, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if res := planning.ValidateTaskProgress(progress); !res.Valid {
		return nil, validationErr(res.Error)
	}

	existing.Progress = progress
	existing.Blocked = blocked
	deriveState(existing)
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *taskService) UpdateAssignee(ctx context.Context, id string, assigneeID string) (*models.Task, error) {
	assignee, err := s.members.FindByID(ctx, assigneeID)
	if err != nil {
		return nil, err
	}
	if assignee == nil {
		return nil, validationErr("assignee does not exist")
	}
	if err := s.repo.UpdateAssignee(ctx, id, assigneeID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
