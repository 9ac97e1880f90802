package create_station

import (
	"github.com/gamebook/GameBook-BookingService/internal/service/stations/models"
)

// CreateStationRequest HTTP request model
type CreateStationRequest struct {
	Name         string          `json:"name"`
	Type         string          `json:"type"` // "PS5" | "PS4" | "PC Gaming" | "VR"
	PricePerHour int64           `json:"pricePerHour"`
	Description  *string         `json:"description,omitempty"`
	ImageURL     *string         `json:"imageUrl,omitempty"`
	Specs        *models.PCSpecs `json:"specs,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateStationRequest) ToServiceRequest(requesterID int64) *models.CreateStationRequest {
	return &models.CreateStationRequest{
		RequesterID:  requesterID,
		Name:         r.Name,
		Type:         r.Type,
		PricePerHour: r.PricePerHour,
		Description:  r.Description,
		ImageURL:     r.ImageURL,
		Specs:        r.Specs,
	}
}
