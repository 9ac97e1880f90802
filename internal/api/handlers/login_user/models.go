package login_user

import (
	"github.com/gamebook/GameBook-BookingService/internal/service/users/models"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *LoginRequest) ToServiceRequest() *models.LoginRequest {
	return &models.LoginRequest{
		Username: r.Username,
		Password: r.Password,
	}
}
