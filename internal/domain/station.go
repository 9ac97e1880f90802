package domain

import "time"

// StationType represents the kind of gaming station
type StationType string

const (
	StationPS5 StationType = "PS5"
	StationPS4 StationType = "PS4"
	StationPC  StationType = "PC Gaming"
	StationVR  StationType = "VR"
)

// IsValid returns true if the type is one of the known station kinds.
func (t StationType) IsValid() bool {
	switch t {
	case StationPS5, StationPS4, StationPC, StationVR:
		return true
	default:
		return false
	}
}

// StationStatus operational status of a station, set by staff.
// It is independent of any single booking.
type StationStatus string

const (
	StationAvailable   StationStatus = "available"
	StationInUse       StationStatus = "in_use"
	StationMaintenance StationStatus = "maintenance"
)

// IsValid returns true if the status is a recognized station status.
func (s StationStatus) IsValid() bool {
	switch s {
	case StationAvailable, StationInUse, StationMaintenance:
		return true
	default:
		return false
	}
}

// PCSpecs hardware description carried only by PC Gaming stations.
type PCSpecs struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
}

// Station represents a physical bookable resource: a console, a PC or a VR rig.
type Station struct {
	ID          int64
	Name        string
	Type        StationType
	PricePerHour int64 // smallest currency unit
	Status      StationStatus

	Description *string
	ImageURL    *string

	// Specs is set only for PC Gaming stations; nil for the rest.
	Specs *PCSpecs

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportsSpecs returns true if the station type carries hardware specs.
func (s *Station) SupportsSpecs() bool {
	return s.Type == StationPC
}

// TotalPrice returns the frozen price for a booking of the given duration.
func (s *Station) TotalPrice(durationHours int) int64 {
	return s.PricePerHour * int64(durationHours)
}
