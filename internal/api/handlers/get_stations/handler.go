package get_stations

import (
	"net/http"

	"github.com/gamebook/GameBook-BookingService/internal/api/handlers"
)

type Handler struct {
	service StationService
	logger  Logger
}

func NewHandler(service StationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations
// Публичный эндпоинт: каталог станций виден без аутентификации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /stations - Failed to list stations: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /stations - Stations listed successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
