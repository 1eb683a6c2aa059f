package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"gorm.io/gorm"
)

var ErrSessionNotFound = errors.New("session not found or expired")

// SessionRepository defines the persistence the session manager needs.
type SessionRepository interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	Delete(token string) error
}

// SessionService issues, resolves and revokes opaque session tokens.
// Possession of a valid token is the whole authorization story, so
// tokens are random UUIDs and live only server-side past the cookie.
type SessionService struct {
	sessionRepo SessionRepository
	ttl         time.Duration
}

func NewSessionService(sessionRepo SessionRepository, ttl time.Duration) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		ttl:         ttl,
	}
}

// Issue creates a new session for the user and returns it.
func (s *SessionService) Issue(userID uint) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		logger.Log.Errorw("failed to create session", "user_id", userID, "err", err)
		return nil, err
	}

	return session, nil
}

// Resolve maps a token back to its session. Unknown and expired tokens
// both come back as ErrSessionNotFound; expired rows are dropped on sight.
func (s *SessionService) Resolve(token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		logger.Log.Errorw("failed to look up session", "err", err)
		return nil, err
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.Delete(session.Token); err != nil {
			logger.Log.Errorw("failed to delete expired session", "err", err)
		}
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Revoke invalidates the token. Revoking an unknown token is a no-op.
func (s *SessionService) Revoke(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.Delete(token)
}
