package service

import (
	"errors"

	"github.com/sefazor/weddingplanner-backend/internal/logger"
	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/pkg/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserRepository defines the persistence the credential store needs.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
}

// AuthResult is what a successful register or login hands back: the user
// plus the freshly issued session whose token goes into the cookie.
type AuthResult struct {
	User    models.User
	Session models.Session
}

type AuthService struct {
	userRepo UserRepository
	sessions *SessionService
}

func NewAuthService(userRepo UserRepository, sessions *SessionService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates a user with a bcrypt-hashed password and logs them in.
// Email comparison is exact-match; the unique index backstops races.
func (s *AuthService) Register(req models.RegisterRequest) (*AuthResult, error) {
	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		logger.Log.Errorw("failed to create user", "email", req.Email, "err", err)
		return nil, err
	}

	session, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("user registered", "user_id", user.ID)

	return &AuthResult{User: *user, Session: *session}, nil
}

// Login verifies credentials and issues a session. Unknown email and wrong
// password surface identically so the response leaks nothing.
func (s *AuthService) Login(req models.LoginRequest) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("user logged in", "user_id", user.ID)

	return &AuthResult{User: *user, Session: *session}, nil
}

// Logout revokes the caller's session.
func (s *AuthService) Logout(token string) error {
	return s.sessions.Revoke(token)
}

// GetUser resolves a user by id for authenticated views.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
