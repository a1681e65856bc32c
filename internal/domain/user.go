package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	AvatarURL    *string   `json:"avatar_url"`
	Bio          *string   `json:"bio"`
	Niche        *string   `json:"niche"`
	Location     *string   `json:"location"`
	Website      *string   `json:"website"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName monta o nome exibido nos relatórios públicos
func (u *User) DisplayName() string {
	if u == nil || u.Name == "" {
		return "Influenciador"
	}
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}

type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}

// UpdateProfileRequest altera só os campos de perfil informados
type UpdateProfileRequest struct {
	Name      *string `json:"name"`
	Lastname  *string `json:"lastname"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	Niche     *string `json:"niche"`
	Location  *string `json:"location"`
	Website   *string `json:"website"`
}
