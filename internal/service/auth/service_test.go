package auth

import (
	"context"
	"testing"

	"github.com/autotrack-hq/payroll-backend-go/internal/domain/auth"
	"github.com/autotrack-hq/payroll-backend-go/internal/domain/user"
	"github.com/autotrack-hq/payroll-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by username
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func newTestService(t *testing.T) AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]user.User{
		"manager": {
			ID:       "user-1",
			Username: "manager",
			Password: string(hash),
			FullName: "Garage Manager",
			Role:     user.RoleManager,
		},
	}}
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	return NewAuthService(users, jwtService)
}

func TestLogin_Success(t *testing.T) {
	service := newTestService(t)

	resp, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "manager",
		Password: "correct-password",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "manager", resp.User.Username)
	assert.Equal(t, string(user.RoleManager), resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "manager",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// An unknown username yields the same error as a wrong password.
func TestLogin_UnknownUser(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{
		Username: "nobody",
		Password: "correct-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	service := newTestService(t)

	_, err := service.Login(context.Background(), auth.LoginRequest{})
	assert.Error(t, err)
}
