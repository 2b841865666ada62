package services

import (
	"context"
	"strings"
	"time"

	"planboard/internal/models"
	"planboard/internal/repositories"
	"planboard/internal/utils"
)

type TeamMemberService interface {
	CreateWithPassword(ctx context.Context, member *models.TeamMember, plainPassword string) (*models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	GetByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	GetAll(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, id string, updateData *models.TeamMember) (*models.TeamMember, error)
	Delete(ctx context.Context, id string) error
	UpdateRefresh(ctx context.Context, id string, token string, expiresAt time.Time) error
}

type teamMemberService struct {
	repo repositories.TeamMemberRepository
	auth AuthService
}

func NewTeamMemberService(repo repositories.TeamMemberRepository, auth AuthService) TeamMemberService {
	return &teamMemberService{repo: repo, auth: auth}
}

// CreateWithPassword stores the member with a bcrypt hash; the plain
// password never reaches the repository.
func (s *teamMemberService) CreateWithPassword(ctx context.Context, member *models.TeamMember, plainPassword string) (*models.TeamMember, error) {
	if strings.TrimSpace(plainPassword) == "" {
		return nil, validationErr("password is required")
	}
	if strings.TrimSpace(member.Email) == "" {
		return nil, validationErr("email is required")
	}
	existing, err := s.repo.FindByEmail(ctx, member.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, validationErr("email already registered")
	}

	hashed, err := s.auth.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	member.PasswordHash = hashed

	member.ID = utils.NewID()
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := s.repo.Store(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *teamMemberService) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *teamMemberService) GetByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *teamMemberService) GetAll(ctx context.Context) ([]models.TeamMember, error) {
	return s.repo.FindAll(ctx)
}

func (s *teamMemberService) Update(ctx context.Context, id string, updateData *models.TeamMember) (*models.TeamMember, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Name = updateData.Name
	existing.DNI = updateData.DNI
	existing.Phone = updateData.Phone
	existing.Email = updateData.Email
	existing.Address = updateData.Address
	existing.RoleID = updateData.RoleID
	existing.TelegramChatID = updateData.TelegramChatID
	existing.NotifyTelegram = updateData.NotifyTelegram
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *teamMemberService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *teamMemberService) UpdateRefresh(ctx context.Context, id string, token string, expiresAt time.Time) error {
	return s.repo.UpdateRefresh(ctx, id, token, expiresAt)
}
