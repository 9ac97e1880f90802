package get_available_slots

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/internal/domain"
	getAvailableSlots "github.com/gamebook/GameBook-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StationID int64    `json:"stationId"`
	Date      string   `json:"date"`
	Slots     []string `json:"slots"` // ["09:00", "10:00", ...]
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(stationID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StationID: stationID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		StationID: resp.StationID,
		Date:      resp.Date.Format(domain.DateFormat),
		Slots:     slots,
	}
}
