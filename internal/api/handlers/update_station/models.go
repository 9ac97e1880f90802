package update_station

import (
	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

// UpdateStationRequest HTTP request model.
// Все поля опциональны: обновляются только переданные.
type UpdateStationRequest struct {
	Name         *string         `json:"name,omitempty"`
	PricePerHour *int64          `json:"pricePerHour,omitempty"`
	Status       *string         `json:"status,omitempty"` // "available" | "in_use" | "maintenance"
	Description  *string         `json:"description,omitempty"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
	Specs        *models.PCSpecs `json:"specs,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStationRequest) ToServiceRequest(requesterID, stationID int64) *models.UpdateStationRequest {
	return &models.UpdateStationRequest{
		RequesterID:  requesterID,
		StationID:    stationID,
		Name:         r.Name,
		PricePerHour: r.PricePerHour,
		Status:       r.Status,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Specs:        r.Specs,
	}
}
