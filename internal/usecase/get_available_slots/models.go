package get_available_slots

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StationID int64     // ID станции
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StationID int64              // ID станции
	Date      time.Time          // Дата, на которую запрашивались слоты
	Slots     []types.TimeString // Свободные слоты в порядке каталога
}
