package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"deli-admin/internal/auth"
	"deli-admin/internal/model"
	"deli-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// authService implements AuthService.
type authService struct {
	adminRepo   repository.AdminRepository
	sessionRepo repository.SessionRepository
	tokens      *auth.TokenIssuer
	ttl         time.Duration
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAuthService creates a new auth service issuing sessions that live for ttl.
func NewAuthService(
	adminRepo repository.AdminRepository,
	sessionRepo repository.SessionRepository,
	tokens *auth.TokenIssuer,
	ttl time.Duration,
	logger zerolog.Logger,
) AuthService {
	return &authService{
		adminRepo:   adminRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		ttl:         ttl,
		now:         time.Now,
		logger:      logger.With().Str("service", "auth").Logger(),
	}
}

// Login checks credentials and opens a session. Unknown usernames and wrong
// passwords fail the same way.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	user, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to look up operator")
		return nil, fmt.Errorf("failed to look up operator: %w", err)
	}
	if user == nil {
		auth.BurnComparison(req.Password)
		s.logger.Warn().Str("username", username).Msg("login failed")
		return nil, model.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", username).Msg("login failed")
		return nil, model.ErrInvalidCredentials
	}

	now := s.now()
	session := &model.Session{
		ID:        uuid.New(),
		AdminID:   user.ID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to create session")
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.tokens.Sign(*session, user.Username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign session token")
		return nil, err
	}

	s.logger.Info().
		Str("username", user.Username).
		Time("expires_at", session.ExpiresAt).
		Msg("operator signed in")

	return &model.LoginResponse{Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Authenticate resolves a bearer token to a live session. The token must
// verify and its session row must still exist and be unexpired.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	id, err := claims.SessionID()
	if err != nil {
		return nil, model.ErrUnauthorised
	}

	session, err := s.sessionRepo.Get(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", id.String()).Msg("failed to get session")
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil || !session.ExpiresAt.After(s.now()) {
		return nil, model.ErrUnauthorised
	}
	return session, nil
}

// Logout revokes a session.
func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID.String()).Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.Info().Str("session_id", sessionID.String()).Msg("operator signed out")
	return nil
}

// PurgeExpired removes sessions past their expiry.
func (s *authService) PurgeExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to purge expired sessions")
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	if removed > 0 {
		s.logger.Debug().Int64("removed", removed).Msg("purged expired sessions")
	}
	return removed, nil
}
