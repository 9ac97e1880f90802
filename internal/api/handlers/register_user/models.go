package register_user

import (
	"github.com/gamebook/GameBook-BookingService/internal/service/users/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Username: r.Username,
		Password: r.Password,
	}
}
