package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backoffice/internal/auth"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// AuthService handles admin login sessions. Tokens handed to the client
// are random; only their hash is stored, and expiry is enforced lazily at
// verification time.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, admin *model.Admin, err error)
	Verify(ctx context.Context, token string) (*model.Admin, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	adminRepo  repository.AdminRepository
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminRepo repository.AdminRepository, sessionTTL time.Duration) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = auth.DefaultSessionTTL
	}
	return &authService{adminRepo: adminRepo, sessionTTL: sessionTTL}
}

// Login verifies credentials and issues a fresh session. Any prior session
// for the admin is dropped first: one active session per login.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.Admin, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find admin: %w", err)
	}
	if !admin.IsActive {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := s.adminRepo.DeleteSessionsForAdmin(ctx, admin.ID); err != nil {
		return "", nil, fmt.Errorf("clear previous sessions: %w", err)
	}

	raw, hash, err := auth.NewSessionToken()
	if err != nil {
		return "", nil, err
	}

	session := &model.AdminSession{
		AdminID:   admin.ID,
		TokenHash: hash,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.adminRepo.CreateSession(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	return raw, admin, nil
}

// Verify resolves a presented token to its admin. Expired sessions are
// deleted on the spot rather than by a background sweep.
func (s *authService) Verify(ctx context.Context, token string) (*model.Admin, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	session, err := s.adminRepo.FindSessionByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("find session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		_ = s.adminRepo.DeleteSession(ctx, session.ID)
		return nil, apperrors.ErrUnauthenticated
	}

	admin, err := s.adminRepo.FindByID(ctx, session.AdminID)
	if err != nil || !admin.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}
	return admin, nil
}

// Logout invalidates the session behind the presented token.
func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.adminRepo.FindSessionByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUnauthenticated
		}
		return fmt.Errorf("find session: %w", err)
	}
	return s.adminRepo.DeleteSession(ctx, session.ID)
}
