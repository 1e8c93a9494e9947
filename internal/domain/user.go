package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role é um papel de acesso atribuído a um usuário.
// Um usuário pode ter zero ou mais papéis (linhas em role_assignments).
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// ValidRole verifica se o papel pertence ao enum conhecido
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID                  int        `json:"id"`
	Name                string     `json:"name"`
	Lastname            string     `json:"lastname"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Active              bool       `json:"active"`
	Confirmed           bool       `json:"confirmed"`
	ConfirmationToken   *string    `json:"-"`
	ResetToken          *string    `json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	Roles               []Role     `json:"roles"`
	Deleted             bool       `json:"deleted"`
	DeletedAt           *time.Time `json:"deleted_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// HasRole verifica se o usuário possui o papel informado
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type UpdateUserRequest struct {
	ID       int     `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Active   *bool   `json:"active"`
	Deleted  *bool   `json:"deleted"`
}

// Claims são as claims do JWT emitido no login; os papéis são embutidos no
// token para que o gate de acesso decida sem nova ida ao banco.
type Claims struct {
	UserID    int
	UserName  string
	UserEmail string
	UserRoles []Role
	jwt.RegisteredClaims
}

// HasRole verifica se as claims carregam o papel informado
func (c *Claims) HasRole(role Role) bool {
	for _, r := range c.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Preference guarda o estado "lembrar meu e-mail" de um usuário.
// SavedEmail só é mantido quando RememberEmail está ligado.
type Preference struct {
	UserID        int       `json:"user_id"`
	RememberEmail bool      `json:"remember_email"`
	SavedEmail    string    `json:"saved_email"`
	UpdatedAt     time.Time `json:"updated_at"`
}
