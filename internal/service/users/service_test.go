package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/internal/service/users/models"
)

// fakeUserRepo хранит пользователей в памяти
type fakeUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := f.users[user.Username]; exists {
		return nil, userRepo.ErrUsernameTaken
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Username] = user
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) List(_ context.Context) ([]*domain.User, error) {
	list := make([]*domain.User, 0, len(f.users))
	for _, user := range f.users {
		list = append(list, user)
	}
	return list, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Username: "player1",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "player1", resp.Username)
	assert.Equal(t, string(domain.RoleUser), resp.Role)

	// Пароль хранится только как bcrypt-хэш
	stored := repo.users["player1"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "secret123"},
		{"short password", "player1", "12345"},
		{"blank username", "   ", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFakeUserRepo(), nopLogger{})

			_, err := svc.Register(context.Background(), &models.RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := NewService(newFakeUserRepo(), nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Username: "player1", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &models.RegisterRequest{Username: "player1", Password: "another456"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Username: "player1", Password: "secret123"})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "player1",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, "player1", resp.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "player1",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), &models.LoginRequest{
			Username: "nobody",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestList_AdminOnly(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["admin"] = &domain.User{ID: 100, Username: "admin", Role: domain.RoleAdmin}
	repo.users["player"] = &domain.User{ID: 101, Username: "player", Role: domain.RoleUser}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), 101)
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.List(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
