package domain

import (
	"errors"
	"fmt"

	"github.com/gamebook/GameBook-BookingService/pkg/types"
)

// ErrInvalidCatalog возвращается при некорректных границах сетки слотов
var ErrInvalidCatalog = errors.New("domain: invalid slot catalog bounds")

// SlotCatalog is the fixed hourly grid of bookable start times.
// Slots run from the opening hour up to, but not including, the closing
// hour. The catalog is a pure function of configuration: no clock, no state.
type SlotCatalog struct {
	openHour  int
	closeHour int
}

// NewSlotCatalog builds a catalog from "HH:MM" bounds.
// Bounds must fall on whole hours with open < close.
func NewSlotCatalog(openTime, closeTime types.TimeString) (SlotCatalog, error) {
	openMin, err := openTime.Minutes()
	if err != nil {
		return SlotCatalog{}, fmt.Errorf("%w: open time: %v", ErrInvalidCatalog, err)
	}
	closeMin, err := closeTime.Minutes()
	if err != nil {
		return SlotCatalog{}, fmt.Errorf("%w: close time: %v", ErrInvalidCatalog, err)
	}
	if openMin%60 != 0 || closeMin%60 != 0 {
		return SlotCatalog{}, fmt.Errorf("%w: bounds must be whole hours", ErrInvalidCatalog)
	}
	if openMin >= closeMin {
		return SlotCatalog{}, fmt.Errorf("%w: open %s is not before close %s", ErrInvalidCatalog, openTime, closeTime)
	}
	return SlotCatalog{openHour: openMin / 60, closeHour: closeMin / 60}, nil
}

// MustDefaultSlotCatalog returns the catalog for the default opening hours.
func MustDefaultSlotCatalog() SlotCatalog {
	c, err := NewSlotCatalog(types.TimeString(DefaultOpenTime), types.TimeString(DefaultCloseTime))
	if err != nil {
		panic(err)
	}
	return c
}

// OpenHour returns the first bookable hour.
func (c SlotCatalog) OpenHour() int { return c.openHour }

// CloseHour returns the closing hour (not bookable).
func (c SlotCatalog) CloseHour() int { return c.closeHour }

// Size returns the number of slots per day.
func (c SlotCatalog) Size() int { return c.closeHour - c.openHour }

// SlotsForDay returns the ordered sequence of bookable start times.
func (c SlotCatalog) SlotsForDay() []types.TimeString {
	slots := make([]types.TimeString, 0, c.Size())
	for h := c.openHour; h < c.closeHour; h++ {
		slot, _ := types.NewTimeStringFromMinutes(h * 60)
		slots = append(slots, slot)
	}
	return slots
}

// Contains reports whether t is a member of the grid: a whole hour
// within opening hours.
func (c SlotCatalog) Contains(t types.TimeString) bool {
	m, err := t.Minutes()
	if err != nil || m%60 != 0 {
		return false
	}
	h := m / 60
	return h >= c.openHour && h < c.closeHour
}

// SpanHours expands a (start, duration) pair into the hours it occupies,
// clipped to the catalog. Часы за пределами сетки не блокируются:
// бронирование не переносится на следующий день.
func (c SlotCatalog) SpanHours(start types.TimeString, durationHours int) []int {
	startHour := start.Hour()
	if startHour < 0 {
		return nil
	}
	hours := make([]int, 0, durationHours)
	for h := startHour; h < startHour+durationHours; h++ {
		if h >= c.openHour && h < c.closeHour {
			hours = append(hours, h)
		}
	}
	return hours
}
