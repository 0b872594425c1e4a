package entity

import "time"

// Vehicle is one tracked assembly unit on the line
type Vehicle struct {
	ID            string    `json:"id" gorm:"primaryKey;size:32"`
	VehicleNumber string    `json:"vehicle_number" gorm:"size:50;uniqueIndex;not null"`
	VehicleType   string    `json:"vehicle_type" gorm:"size:10;not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// Vehicle types (fixed product lines)
const (
	VehicleTypeK9  = "K9"
	VehicleTypeK10 = "K10"
	VehicleTypeK11 = "K11"
)

// VehicleTypes display/rank order for grouping and sorting
var VehicleTypes = []string{VehicleTypeK9, VehicleTypeK10, VehicleTypeK11}

// StationLayouts maps each vehicle type to its ordered station codes.
// Compiled in, never loaded dynamically.
var StationLayouts = map[string][]string{
	VehicleTypeK9:  {"A01", "A02", "A03", "A04", "A05", "A06", "A07", "A08", "A09", "A10", "A11"},
	VehicleTypeK10: {"A01", "A12", "A13", "A14", "A15", "A16"},
	VehicleTypeK11: {"A01", "A12", "A13", "A14", "A15", "A16"},
}

// IsValidVehicleType reports whether t is one of the fixed types
func IsValidVehicleType(t string) bool {
	_, ok := StationLayouts[t]
	return ok
}
