package entity

import "time"

// ProductionStatus is the tracked state of one vehicle at one station.
// Exactly one row exists per (vehicle_number, station_code) pair.
type ProductionStatus struct {
	ID            string    `json:"id" gorm:"primaryKey;size:32"`
	VehicleNumber string    `json:"vehicle_number" gorm:"size:50;not null;uniqueIndex:idx_prod_vehicle_station"`
	StationCode   string    `json:"station_code" gorm:"size:10;not null;uniqueIndex:idx_prod_vehicle_station"`
	Status        string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ProductionStatus) TableName() string {
	return "production_status"
}

// Station status values. Transitions are unrestricted: any state may
// follow any other.
const (
	StationStatusPending    = "pending"
	StationStatusInProgress = "in_progress"
	StationStatusCompleted  = "completed"
)

// IsValidStationStatus reports whether s is a known station status
func IsValidStationStatus(s string) bool {
	switch s {
	case StationStatusPending, StationStatusInProgress, StationStatusCompleted:
		return true
	}
	return false
}
