package get_stations

import (
	"context"

	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

type StationService interface {
	List(ctx context.Context) (*models.StationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
