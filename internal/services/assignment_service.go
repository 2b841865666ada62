package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"planboard/internal/models"
	"planboard/internal/planning"
	"planboard/internal/repositories"
	"planboard/internal/utils"
)

// AssignmentService wires the planning core into assignment writes. Hard
// rules (hours > 0, date order, existing task and resource) block the save;
// soft rules (capacity overflow, date-range conflicts) come back as warning
// strings with the saved record. One consistent policy for every flow:
// warnings never block.
type AssignmentService interface {
	Create(ctx context.Context, assignment *models.ResourceAssignment) (*models.ResourceAssignment, []string, error)
	GetByID(ctx context.Context, id string) (*models.ResourceAssignment, error)
	GetAll(ctx context.Context, filter models.AssignmentFilter) ([]models.ResourceAssignment, error)
	Update(ctx context.Context, id string, updateData *models.ResourceAssignment) (*models.ResourceAssignment, []string, error)
	Delete(ctx context.Context, id string) error
	CheckConflicts(ctx context.Context, resourceID string, start, end time.Time, excludeTaskID string) (planning.ConflictResult, []models.Task, error)
}

type assignmentService struct {
	repo      repositories.AssignmentRepository
	tasks     repositories.TaskRepository
	resources repositories.ResourceRepository
}

func NewAssignmentService(
	repo repositories.AssignmentRepository,
	tasks repositories.TaskRepository,
	resources repositories.ResourceRepository,
) AssignmentService {
	return &assignmentService{repo: repo, tasks: tasks, resources: resources}
}

func (s *assignmentService) validate(ctx context.Context, a *models.ResourceAssignment) (*models.Resource, error) {
	if a.HoursAssigned <= 0 {
		return nil, validationErr("hours assigned must be greater than 0")
	}
	if res := planning.ValidateDateOrder(a.StartDate, a.EndDate); !res.Valid {
		return nil, validationErr(res.Error)
	}
	task, err := s.tasks.FindByID(ctx, a.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, validationErr("task does not exist")
	}
	resource, err := s.resources.FindByID(ctx, a.ResourceID)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, validationErr("resource does not exist")
	}
	return resource, nil
}

// warnings computes the soft rules for a candidate assignment against the
// full snapshot. excludeAssignmentID keeps an edit from double-counting its
// own stored hours; the candidate's task is excluded from conflict checks so
// an edit never conflicts with itself.
func (s *assignmentService) warnings(ctx context.Context, a *models.ResourceAssignment, resource *models.Resource, excludeAssignmentID string) ([]string, error) {
	all, err := s.repo.FindAll(ctx, models.AssignmentFilter{})
	if err != nil {
		return nil, err
	}

	var warnings []string

	hours := planning.ValidateResourceHours(*resource, all, a.HoursAssigned, excludeAssignmentID)
	if !hours.Valid {
		warnings = append(warnings, hours.Error)
	}

	conflicts := planning.CheckResourceConflicts(a.ResourceID, a.StartDate, a.EndDate, a.TaskID, all)
	for _, c := range conflicts.Conflicting {
		name := c.TaskID
		if t, err := s.tasks.FindByID(ctx, c.TaskID); err == nil && t != nil {
			name = t.Name
		}
		warnings = append(warnings, fmt.Sprintf("%s is already booked on %q from %s to %s",
			resource.Name, name, planning.FormatDate(c.StartDate), planning.FormatDate(c.EndDate)))
	}
	return warnings, nil
}

// refreshAssignedHours recomputes the resource's committed-hours cache from
// the assignment table. The cache is never trusted, always recomputed.
func (s *assignmentService) refreshAssignedHours(ctx context.Context, resourceID string) {
	all, err := s.repo.FindAll(ctx, models.AssignmentFilter{ResourceID: &resourceID})
	if err != nil {
		log.Printf("[assignment][cache][err] list for resource=%s: %v", resourceID, err)
		return
	}
	total := planning.AssignedHours(resourceID, all)
	if err := s.resources.UpdateAssignedHours(ctx, resourceID, total); err != nil {
		log.Printf("[assignment][cache][err] update resource=%s: %v", resourceID, err)
	}
}

func (s *assignmentService) Create(ctx context.Context, assignment *models.ResourceAssignment) (*models.ResourceAssignment, []string, error) {
	resource, err := s.validate(ctx, assignment)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := s.warnings(ctx, assignment, resource, "")
	if err != nil {
		return nil, nil, err
	}

	assignment.ID = utils.NewID()
	now := time.Now()
	assignment.CreatedAt = now
	assignment.UpdatedAt = now

	if err := s.repo.Store(ctx, assignment); err != nil {
		return nil, nil, err
	}
	s.refreshAssignedHours(ctx, assignment.ResourceID)
	return assignment, warnings, nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*models.ResourceAssignment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *assignmentService) GetAll(ctx context.Context, filter models.AssignmentFilter) ([]models.ResourceAssignment, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *assignmentService) Update(ctx context.Context, id string, updateData *models.ResourceAssignment) (*models.ResourceAssignment, []string, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if existing == nil {
		return nil, nil, nil
	}
	previousResource := existing.ResourceID

	existing.TaskID = updateData.TaskID
	existing.ResourceID = updateData.ResourceID
	existing.HoursAssigned = updateData.HoursAssigned
	existing.StartDate = updateData.StartDate
	existing.EndDate = updateData.EndDate

	resource, err := s.validate(ctx, existing)
	if err != nil {
		return nil, nil, err
	}
	warnings, err := s.warnings(ctx, existing, resource, existing.ID)
	if err != nil {
		return nil, nil, err
	}

	existing.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, nil, err
	}
	s.refreshAssignedHours(ctx, existing.ResourceID)
	if previousResource != existing.ResourceID {
		s.refreshAssignedHours(ctx, previousResource)
	}
	return existing, warnings, nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAssignedHours(ctx, existing.ResourceID)
	return nil
}

// CheckConflicts backs the live advisory check the assignment form calls on
// every edit. Returns the conflicting records plus the tasks they belong to
// so the form can name them.
func (s *assignmentService) CheckConflicts(ctx context.Context, resourceID string, start, end time.Time, excludeTaskID string) (planning.ConflictResult, []models.Task, error) {
	all, err := s.repo.FindAll(ctx, models.AssignmentFilter{ResourceID: &resourceID})
	if err != nil {
		return planning.ConflictResult{}, nil, err
	}
	result := planning.CheckResourceConflicts(resourceID, start, end, excludeTaskID, all)

	var tasks []models.Task
	seen := map[string]bool{}
	for _, c := range result.Conflicting {
		if seen[c.TaskID] {
			continue
		}
		seen[c.TaskID] = true
		t, err := s.tasks.FindByID(ctx, c.TaskID)
		if err != nil {
			return planning.ConflictResult{}, nil, err
		}
		if t != nil {
			tasks = append(tasks, *t)
		}
	}
	return result, tasks, nil
}
