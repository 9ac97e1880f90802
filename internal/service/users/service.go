package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	userRepo "github.com/gamebook/GameBook-BookingService/internal/infra/storage/user"
	"github.com/gamebook/GameBook-BookingService/internal/service/users/models"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
)

// Service сервис учетных записей: регистрация, вход, список пользователей.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя с ролью user.
// Пароль хранится только в виде bcrypt-хэша.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Info("Register: registering user username=%s", username)

	if err := validateCredentials(username, req.Password); err != nil {
		s.logger.Warn("Register: validation failed for username=%s: %v", username, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Register: username=%s already taken", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Register: repository error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// Login проверяет учетные данные и возвращает пользователя.
// Несуществующий пользователь и неверный пароль дают один и тот же ответ.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	s.logger.Info("Login: attempting login for username=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user username=%s not found", username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: invalid password for username=%s", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: successful login for user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID.
// Пользователь видит только себя, админ - любого.
func (s *Service) GetByID(ctx context.Context, id int64, requesterID int64) (*models.UserResponse, error) {
	if id != requesterID {
		if err := s.checkAdmin(ctx, requesterID); err != nil {
			s.logger.Warn("GetByID: access denied for user=%d to user id=%d", requesterID, id)
			return nil, err
		}
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей. Доступно только админу.
func (s *Service) List(ctx context.Context, requesterID int64) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching users for requester=%d", requesterID)

	if err := s.checkAdmin(ctx, requesterID); err != nil {
		s.logger.Warn("List: access denied for requester=%d", requesterID)
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d users", len(users))
	return models.FromDomainUserList(users), nil
}

// validateCredentials проверяет имя пользователя и пароль при регистрации
func validateCredentials(username, password string) error {
	if len(username) < minUsernameLength {
		return fmt.Errorf("%w: username must be at least %d characters", ErrInvalidInput, minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be at most %d characters", ErrInvalidInput, maxUsernameLength)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}

// checkAdmin проверяет, что пользователь - админ
func (s *Service) checkAdmin(ctx context.Context, requesterID int64) error {
	user, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: checkAdmin - failed to get user: %v", ErrInternal, err)
	}
	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
