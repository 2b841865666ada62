// internal/models/team_member.go
package models

import "time"

// TeamMember is a person who can manage projects and be assigned tasks.
type TeamMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DNI          string `json:"dni"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`

	// telegram notification settings
	TelegramChatID int64 `json:"-"`
	NotifyTelegram bool  `json:"-"`

	// refresh token storage
	RefreshToken     *string    `json:"-"`
	RefreshExpiresAt *time.Time `json:"-"`
	RefreshRevoked   bool       `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
