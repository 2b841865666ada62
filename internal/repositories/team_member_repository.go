package repositories

import (
	"context"
	"database/sql"
	"time"

	"planboard/internal/models"
)

type TeamMemberRepository interface {
	Store(ctx context.Context, member *models.TeamMember) error
	FindByID(ctx context.Context, id string) (*models.TeamMember, error)
	FindByEmail(ctx context.Context, email string) (*models.TeamMember, error)
	FindAll(ctx context.Context) ([]models.TeamMember, error)
	Update(ctx context.Context, member *models.TeamMember) error
	Delete(ctx context.Context, id string) error
	UpdateRefresh(ctx context.Context, id string, token string, expiresAt time.Time) error
	GetTelegramSettings(ctx context.Context, id string) (chatID int64, allow bool, err error)
}

type teamMemberRepository struct {
	db *sql.DB
}

func NewTeamMemberRepository(db *sql.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

const memberColumns = `id, name, dni, phone, email, address, password_hash, role_id,
       telegram_chat_id, notify_telegram, refresh_token, refresh_expires_at, refresh_revoked,
       created_at, updated_at`

func (r *teamMemberRepository) scanMember(row interface{ Scan(...interface{}) error }) (*models.TeamMember, error) {
	m := &models.TeamMember{}
	err := row.Scan(
		&m.ID, &m.Name, &m.DNI, &m.Phone, &m.Email, &m.Address, &m.PasswordHash, &m.RoleID,
		&m.TelegramChatID, &m.NotifyTelegram, &m.RefreshToken, &m.RefreshExpiresAt, &m.RefreshRevoked,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *teamMemberRepository) Store(ctx context.Context, member *models.TeamMember) error {
	query := `
		INSERT INTO team_members (
			id, name, dni, phone, email, address, password_hash, role_id,
			telegram_chat_id, notify_telegram, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.db.ExecContext(ctx, query,
		member.ID, member.Name, member.DNI, member.Phone, member.Email, member.Address,
		member.PasswordHash, member.RoleID, member.TelegramChatID, member.NotifyTelegram,
		member.CreatedAt, member.UpdatedAt,
	)
	return err
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id string) (*models.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE id = $1`
	m, err := r.scanMember(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *teamMemberRepository) FindByEmail(ctx context.Context, email string) (*models.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members WHERE email = $1`
	m, err := r.scanMember(r.db.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return m, err
}

func (r *teamMemberRepository) FindAll(ctx context.Context) ([]models.TeamMember, error) {
	query := `SELECT ` + memberColumns + ` FROM team_members ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []models.TeamMember
	for rows.Next() {
		m, err := r.scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

func (r *teamMemberRepository) Update(ctx context.Context, member *models.TeamMember) error {
	query := `
		UPDATE team_members SET
			name=$1, dni=$2, phone=$3, email=$4, address=$5, role_id=$6,
			telegram_chat_id=$7, notify_telegram=$8, updated_at=$9
		WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query,
		member.Name, member.DNI, member.Phone, member.Email, member.Address, member.RoleID,
		member.TelegramChatID, member.NotifyTelegram, member.UpdatedAt, member.ID,
	)
	return err
}

func (r *teamMemberRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	return err
}

func (r *teamMemberRepository) UpdateRefresh(ctx context.Context, id string, token string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=false, updated_at=NOW() WHERE id=$3`,
		token, expiresAt, id)
	return err
}

func (r *teamMemberRepository) GetTelegramSettings(ctx context.Context, id string) (int64, bool, error) {
	var chatID int64
	var allow bool
	err := r.db.QueryRowContext(ctx,
		`SELECT telegram_chat_id, notify_telegram FROM team_members WHERE id = $1`, id,
	).Scan(&chatID, &allow)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return chatID, allow, nil
}
