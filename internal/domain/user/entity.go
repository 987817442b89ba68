package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleGuest, RoleStaff:
		return Role(s), nil
	default:
		return "", ErrInvalidRole
	}
}

// Guest is the persisted account record. Fields are exported because the
// record is marshalled to JSON as-is by the key-value repositories.
type Guest struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone,omitempty"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func NewGuest(email Email, passwordHash, firstName, lastName string, now time.Time) *Guest {
	return &Guest{
		ID:           uuid.New(),
		Email:        email.Value(),
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         RoleGuest,
		IsActive:     true,
		CreatedAt:    now,
	}
}
