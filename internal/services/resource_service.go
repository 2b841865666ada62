package services

import (
	"context"

	"planboard/internal/models"
	"planboard/internal/repositories"
	"planboard/internal/utils"
)

// ResourceService defines the interface for resource-related business logic.
type ResourceService interface {
	Create(ctx context.Context, resource *models.Resource) (*models.Resource, error)
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	GetAll(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Update(ctx context.Context, id string, updateData *models.Resource) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
}

type resourceService struct {
	repo repositories.ResourceRepository
}

// NewResourceService creates a new instance of ResourceService.
func NewResourceService(repo repositories.ResourceRepository) ResourceService {
	return &resourceService{repo: repo}
}

func validateResource(resource *models.Resource) error {
	switch resource.Type {
	case models.ResourceHuman, models.ResourceSoftware, models.ResourceInfrastructure:
	default:
		return validationErr("unknown resource type")
	}
	if resource.HourlyRate < 0 {
		return validationErr("hourly rate must not be negative")
	}
	if resource.TotalHours <= 0 {
		return validationErr("total hours must be greater than 0")
	}
	return nil
}

func (s *resourceService) Create(ctx context.Context, resource *models.Resource) (*models.Resource, error) {
	if err := validateResource(resource); err != nil {
		return nil, err
	}
	resource.ID = utils.NewID()
	resource.AssignedHours = 0
	resource.AvailableHours = resource.TotalHours

	if err := s.repo.Store(ctx, resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *resourceService) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *resourceService) GetAll(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	return s.repo.FindAll(ctx, filter)
}

func (s *resourceService) Update(ctx context.Context, id string, updateData *models.Resource) (*models.Resource, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = updateData.Name
	existing.Type = updateData.Type
	existing.HourlyRate = updateData.HourlyRate
	existing.TotalHours = updateData.TotalHours

	if err := validateResource(existing); err != nil {
		return nil, err
	}
	existing.AvailableHours = existing.TotalHours - existing.AssignedHours

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *resourceService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
