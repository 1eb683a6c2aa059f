package service_test

import (
	"testing"
	"time"

	"github.com/sefazor/weddingplanner-backend/internal/models"
	"github.com/sefazor/weddingplanner-backend/internal/service"
	"github.com/sefazor/weddingplanner-backend/internal/testutil"
	"github.com/sefazor/weddingplanner-backend/pkg/bcrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService() (*service.AuthService, *testutil.UserRepo, *service.SessionService) {
	users := testutil.NewUserRepo()
	sessions := service.NewSessionService(testutil.NewSessionRepo(), time.Hour)
	return service.NewAuthService(users, sessions), users, sessions
}

func TestAuthService_Register(t *testing.T) {
	svc, users, sessions := newAuthService()

	result, err := svc.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw1234",
	})
	require.NoError(t, err)

	// Stored password is a hash, never the plaintext
	stored, err := users.GetByEmail("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1234", stored.Password)
	assert.NoError(t, bcrypt.ComparePassword(stored.Password, "pw1234"))

	// Registration logs the user in
	session, err := sessions.Resolve(result.Session.Token)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, session.UserID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService()

	req := models.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "pw1234"}

	_, err := svc.Register(req)
	require.NoError(t, err)

	req.Name = "Another Alice"
	_, err = svc.Register(req)
	assert.ErrorIs(t, err, service.ErrEmailAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	svc, _, sessions := newAuthService()

	registered, err := svc.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw1234",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{
			name: "correct credentials",
			req:  models.LoginRequest{Email: "a@x.com", Password: "pw1234"},
		},
		{
			name:    "wrong password",
			req:     models.LoginRequest{Email: "a@x.com", Password: "wrong"},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:    "unknown email",
			req:     models.LoginRequest{Email: "b@x.com", Password: "pw1234"},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Login(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.User.ID, result.User.ID)

			session, err := sessions.Resolve(result.Session.Token)
			require.NoError(t, err)
			assert.Equal(t, registered.User.ID, session.UserID)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	svc, _, sessions := newAuthService()

	result, err := svc.Register(models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.com",
		Password: "pw1234",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(result.Session.Token))

	_, err = sessions.Resolve(result.Session.Token)
	assert.ErrorIs(t, err, service.ErrSessionNotFound)
}
