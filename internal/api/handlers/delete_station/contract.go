package delete_station

import (
	"context"

	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

type StationService interface {
	Delete(ctx context.Context, req *models.DeleteStationRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
