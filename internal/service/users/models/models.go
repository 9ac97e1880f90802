package models

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
)

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Username string
	Password string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string
	Password string
}

// UserResponse пользователь в ответе сервиса. Хэш пароля наружу не отдается.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUser конвертирует доменного пользователя в модель ответа
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// FromDomainUserList конвертирует список доменных пользователей
func FromDomainUserList(list []*domain.User) *UserListResponse {
	users := make([]UserResponse, 0, len(list))
	for _, u := range list {
		users = append(users, *FromDomainUser(u))
	}
	return &UserListResponse{
		Users: users,
		Total: len(users),
	}
}
