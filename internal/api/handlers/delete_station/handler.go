package delete_station

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/gamebook/GameBook-BookingService/internal/api/handlers"
	"github.com/gamebook/GameBook-BookingService/internal/api/middleware"
	"github.com/gamebook/GameBook-BookingService/internal/service/stations"
	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

const (
	msgInvalidStationID = "некорректный ID станции"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "станция не найдена"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/stations/{stationId}
// Только для админа.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	stationIDStr := vars["stationId"]

	stationID, err := strconv.ParseInt(stationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /stations/{id} - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /stations/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.DeleteStationRequest{
		RequesterID: userID,
		StationID:   stationID,
	}

	if err := h.service.Delete(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, stations.ErrStationNotFound):
			h.logger.Warn("DELETE /stations/{id} - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, stations.ErrAccessDenied):
			h.logger.Warn("DELETE /stations/{id} - Access denied: station_id=%d, user_id=%d", stationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /stations/{id} - Failed to delete station: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /stations/{id} - Station deleted successfully: station_id=%d, user_id=%d",
		stationID, userID)
	w.WriteHeader(http.StatusNoContent)
}
