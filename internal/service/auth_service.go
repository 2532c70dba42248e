package service

import (
	"context"
	"fmt"
	"time"

	"sedbms/internal/access"
	"sedbms/internal/auth"
	apperrors "sedbms/internal/errors"
	"sedbms/internal/logger"
	"sedbms/internal/metrics"
	"sedbms/internal/repository"
)

// AuthService handles login, logout and session resumption.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, session *access.Session, err error)
	Logout(ctx context.Context, claims *auth.Claims) error
	// Resume turns validated token claims into a session, rejecting revoked tokens.
	Resume(ctx context.Context, claims *auth.Claims) (*access.Session, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login verifies the password and issues a session token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *access.Session, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("find user: %w", err)
		}
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	ok, needsRehash := auth.CheckPassword(user.PasswordHash, password)
	if !ok {
		metrics.LoginAttempts.WithLabelValues("invalid").Inc()
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if needsRehash {
		s.upgradeDigest(ctx, user.ID, user.Username, password)
	}

	token, claims, err := s.jwtService.GenerateToken(user.Username, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return token, &access.Session{Username: user.Username, Role: user.Role, TokenID: claims.ID}, nil
}

// upgradeDigest replaces a legacy SHA-256 digest with bcrypt. Failure keeps the
// old digest working, so it is only logged.
func (s *authService) upgradeDigest(ctx context.Context, id uint, username, password string) {
	hash, err := auth.HashPassword(password)
	if err == nil {
		err = s.userRepo.UpdatePasswordHash(ctx, id, hash)
	}
	if err != nil {
		logger.GetInstance().Warnf("upgrade password digest for %s: %v", username, err)
		return
	}
	logger.GetInstance().Infof("upgraded password digest for %s to bcrypt", username)
}

// Logout revokes the token until its natural expiry.
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return apperrors.ErrUnauthenticated
	}
	ttl := s.jwtService.TTL()
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return s.tokenStore.RevokeToken(ctx, claims.ID, ttl)
}

func (s *authService) Resume(ctx context.Context, claims *auth.Claims) (*access.Session, error) {
	if claims == nil || claims.Username == "" || !claims.Role.Valid() {
		return nil, apperrors.ErrUnauthenticated
	}
	revoked, err := s.tokenStore.IsTokenRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, apperrors.ErrUnauthenticated
	}
	return &access.Session{Username: claims.Username, Role: claims.Role, TokenID: claims.ID}, nil
}
