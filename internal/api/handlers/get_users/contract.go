package get_users

import (
	"context"

	"github.com/gamebook/GameBook-BookingService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, requesterID int64) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
