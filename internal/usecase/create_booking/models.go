package create_booking

import (
	"time"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	StationID     int64            // ID станции
	UserID        int64            // ID пользователя
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Слот начала (например, "14:00")
	DurationHours int              // Длительность в часах (1-4)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64            // ID созданного бронирования
	StationID     int64            // ID станции
	UserID        int64            // ID пользователя
	BookingDate   time.Time        // Дата бронирования
	StartTime     types.TimeString // Время начала
	DurationHours int              // Длительность в часах
	TotalPrice    int64            // Итоговая цена, зафиксированная при создании
	Status        string           // Статус бронирования

	// Денормализованные данные станции
	StationName string
	StationType string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
