package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"lumiere-guest-api/internal/domain/user"
	reqdto "lumiere-guest-api/internal/handler/dto/request"
	"lumiere-guest-api/internal/infra"
	"lumiere-guest-api/internal/pkg/clock"
	"lumiere-guest-api/internal/pkg/errs"
	"lumiere-guest-api/internal/pkg/jwt"
	"lumiere-guest-api/internal/pkg/password"
)

var (
	ErrGuestNotFound        = errs.New("guest not found")
	ErrEmailTaken           = errs.New("email already registered")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrGuestInactive        = errs.New("guest inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	GuestID   uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	guests     GuestRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(guests GuestRepository, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		guests:     guests,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	guest := user.NewGuest(credentials.Email(), hash, req.FirstName, req.LastName, a.clock.Now())
	guest.Phone = req.Phone

	if err := a.guests.Create(ctx, guest); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, errs.Wrap(err, "failed to create guest")
	}

	pair, err := a.issueTokens(guest.ID, guest.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{GuestID: guest.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	guest, err := a.validateGuest(ctx, credentials)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(guest.ID, guest.Role)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	guest.LastLogin = &now
	if updateErr := a.guests.UpdateLastLogin(ctx, guest.ID, guest); updateErr != nil {
		slog.Warn("failed to update last login", "guest_id", guest.ID, "error", updateErr.Error())
		// Continue without failing - this is not critical
	}

	return &LoginResult{GuestID: guest.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate guest still exists and is active
	guest, err := a.guests.FindByID(ctx, claims.GuestID)
	if err != nil || guest == nil {
		return nil, ErrGuestNotFound
	}
	if !guest.IsActive {
		return nil, ErrGuestInactive
	}

	return a.issueTokens(claims.GuestID, role)
}

func (a *authCommandsImpl) validateGuest(ctx context.Context, credentials user.Credentials) (*user.Guest, error) {
	guest, err := a.guests.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Return same error as password mismatch to prevent guest enumeration attacks
		return nil, ErrInvalidCredentials
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	if !guest.IsActive {
		return nil, ErrGuestInactive
	}

	if err := password.ComparePassword(guest.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return guest, nil
}

func (a *authCommandsImpl) issueTokens(guestID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(guestID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(guestID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
