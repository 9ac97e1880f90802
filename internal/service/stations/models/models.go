package models

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
)

// CreateStationRequest запрос на создание станции
type CreateStationRequest struct {
	RequesterID  int64
	Name         string
	Type         string
	PricePerHour int64
	Description  *string
	ImageURL     *string
	Specs        *PCSpecs
}

// UpdateStationRequest запрос на обновление станции.
// Обновляются только переданные поля.
type UpdateStationRequest struct {
	RequesterID  int64
	StationID    int64
	Name         *string
	PricePerHour *int64
	Status       *string
	Description  *string
	ImageURL     *string
	Specs        *PCSpecs
}

// DeleteStationRequest запрос на удаление станции
type DeleteStationRequest struct {
	RequesterID int64
	StationID   int64
}

// PCSpecs характеристики игрового ПК
type PCSpecs struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
}

// StationResponse станция в ответе сервиса
type StationResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	PricePerHour int64     `json:"price_per_hour"`
	Status       string    `json:"status"`
	Description  *string   `json:"description,omitempty"`
	ImageURL     *string   `json:"image_url,omitempty"`
	Specs        *PCSpecs  `json:"specs,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StationListResponse список станций
type StationListResponse struct {
	Stations []StationResponse `json:"stations"`
	Total    int               `json:"total"`
}

// ToDomainSpecs конвертирует характеристики в доменную модель
func (s *PCSpecs) ToDomainSpecs() *domain.PCSpecs {
	if s == nil {
		return nil
	}
	return &domain.PCSpecs{
		CPU:     s.CPU,
		GPU:     s.GPU,
		RAM:     s.RAM,
		Storage: s.Storage,
	}
}

// FromDomainSpecs конвертирует доменные характеристики в модель сервиса
func FromDomainSpecs(s *domain.PCSpecs) *PCSpecs {
	if s == nil {
		return nil
	}
	return &PCSpecs{
		CPU:     s.CPU,
		GPU:     s.GPU,
		RAM:     s.RAM,
		Storage: s.Storage,
	}
}

// FromDomainStation конвертирует доменную станцию в модель ответа
func FromDomainStation(s *domain.Station) *StationResponse {
	return &StationResponse{
		ID:           s.ID,
		Name:         s.Name,
		Type:         string(s.Type),
		PricePerHour: s.PricePerHour,
		Status:       string(s.Status),
		Description:  s.Description,
		ImageURL:     s.ImageURL,
		Specs:        FromDomainSpecs(s.Specs),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainStationList конвертирует список доменных станций
func FromDomainStationList(list []*domain.Station) *StationListResponse {
	stations := make([]StationResponse, 0, len(list))
	for _, s := range list {
		stations = append(stations, *FromDomainStation(s))
	}
	return &StationListResponse{
		Stations: stations,
		Total:    len(stations),
	}
}
