//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"lumiere-guest-api/internal/domain/user"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	"lumiere-guest-api/internal/usecase/queries"
)

type GuestBuilder struct {
	Email        string
	Password     string
	PasswordHash string
	FirstName    string
	LastName     string
	IsActive     bool
}

func NewGuestBuilder() *GuestBuilder {
	return &GuestBuilder{
		Email:        "marie.dubois@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		FirstName:    "Marie",
		LastName:     "Dubois",
		IsActive:     true,
	}
}

func (g *GuestBuilder) WithEmail(email string) *GuestBuilder {
	g.Email = email
	return g
}

func (g *GuestBuilder) AsInactive() *GuestBuilder {
	g.IsActive = false
	return g
}

func (g *GuestBuilder) BuildDomain() (*user.Guest, error) {
	email, err := user.NewEmail(g.Email)
	if err != nil {
		return nil, err
	}

	guest := user.NewGuest(email, g.PasswordHash, g.FirstName, g.LastName, time.Now())
	guest.IsActive = g.IsActive
	return guest, nil
}

func (g *GuestBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    g.Email,
		Password: g.Password,
	}
}

func (g *GuestBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     g.Email,
		Password:  g.Password,
		FirstName: g.FirstName,
		LastName:  g.LastName,
	}
}

func (g *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{
		ID:        uuid.New(),
		Email:     g.Email,
		FirstName: g.FirstName,
		LastName:  g.LastName,
		Role:      "guest",
		IsActive:  g.IsActive,
	}
}
