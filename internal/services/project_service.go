package services

import (
	"context"
	"fmt"
	"time"

	"planboard/internal/models"
	"planboard/internal/planning"
	"planboard/internal/repositories"
	"planboard/internal/utils"
)

// ProjectService defines the interface for project-related business logic.
type ProjectService interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetAll(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	Update(ctx context.Context, id string, updateData *models.Project) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, to models.ProjectStatus) (*models.Project, error)
}

type projectService struct {
	repo        repositories.ProjectRepository
	tasks       repositories.TaskRepository
	assignments repositories.AssignmentRepository
	members     repositories.TeamMemberRepository
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(
	repo repositories.ProjectRepository,
	tasks repositories.TaskRepository,
	assignments repositories.AssignmentRepository,
	members repositories.TeamMemberRepository,
) ProjectService {
	return &projectService{repo: repo, tasks: tasks, assignments: assignments, members: members}
}

func (s *projectService) validate(ctx context.Context, project *models.Project) error {
	if project.TotalBudget <= 0 {
		return validationErr("total budget must be greater than 0")
	}
	if res := planning.ValidateDateOrder(project.StartDate, project.EndDate); !res.Valid {
		return validationErr(res.Error)
	}
	if project.ManagerID != "" {
		manager, err := s.members.FindByID(ctx, project.ManagerID)
		if err != nil {
			return err
		}
		if manager == nil {
			return validationErr("manager does not exist")
		}
	}
	return nil
}

func (s *projectService) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	if err := s.validate(ctx, project); err != nil {
		return nil, err
	}
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	project.ID = utils.NewID()
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	if err := s.repo.Store(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *projectService) GetAll(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *projectService) Update(ctx context.Context, id string, updateData *models.Project) (*models.Project, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = updateData.Name
	existing.Description = updateData.Description
	existing.StartDate = updateData.StartDate
	existing.EndDate = updateData.EndDate
	existing.TotalBudget = updateData.TotalBudget
	existing.ManagerID = updateData.ManagerID

	if err := s.validate(ctx, existing); err != nil {
		return nil, err
	}

	// shrinking the budget below what tasks already hold is a hard error
	projectID := existing.ID
	siblings, err := s.tasks.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return nil, err
	}
	if check := planning.ValidateProjectBudget(existing.TotalBudget, siblings, "", 0); !check.Valid {
		return nil, validationErrRemaining(check.Error, check.Remaining)
	}

	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete cascades: assignments of the project's tasks go first, then the
// tasks, then the project itself.
func (s *projectService) Delete(ctx context.Context, id string) error {
	projectID := id
	tasks, err := s.tasks.FindAll(ctx, models.TaskFilter{ProjectID: &projectID})
	if err != nil {
		return err
	}
	for _, t := range tasks {
		if err := s.assignments.DeleteByTask(ctx, t.ID); err != nil {
			return fmt.Errorf("delete assignments of task %s: %w", t.ID, err)
		}
	}
	if err := s.tasks.DeleteByProject(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *projectService) UpdateStatus(ctx context.Context, id string, to models.ProjectStatus) (*models.Project, error) {
	switch to {
	case models.ProjectActive, models.ProjectPaused, models.ProjectClosed:
	default:
		return nil, validationErr("unknown project status")
	}
	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}
