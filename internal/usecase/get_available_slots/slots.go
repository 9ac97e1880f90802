package get_available_slots

import (
	"github.com/gamebook/GameBook-BookingService/internal/domain"
	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// freeSlots вычитает из каталога часы, занятые активными бронированиями.
// Многочасовое бронирование блокирует ВСЕ часы интервала
// [start, start+duration), а не только стартовый слот. Порядок каталога
// сохраняется. Функция чистая: "сейчас" сюда не попадает, только набор
// существующих бронирований.
//
// Примеры:
// - Бронирование 14:00 на 2 часа занимает слоты {14:00, 15:00}
// - Бронирование 21:00 на 4 часа занимает только реальный слот {21:00}:
//   часы за пределами сетки не блокируются и не переносятся на завтра
func freeSlots(catalog domain.SlotCatalog, bookings []*domain.Booking) []types.TimeString {
	occupied := occupiedHours(catalog, bookings)

	free := make([]types.TimeString, 0, catalog.Size())
	for _, slot := range catalog.SlotsForDay() {
		if !occupied[slot.Hour()] {
			free = append(free, slot)
		}
	}
	return free
}

// occupiedHours разворачивает активные бронирования в множество занятых часов
func occupiedHours(catalog domain.SlotCatalog, bookings []*domain.Booking) map[int]bool {
	occupied := make(map[int]bool)
	for _, booking := range bookings {
		// Отменённые бронирования слоты не занимают
		if !booking.IsActive() {
			continue
		}
		for _, h := range catalog.SpanHours(booking.StartTime, booking.DurationHours) {
			occupied[h] = true
		}
	}
	return occupied
}
