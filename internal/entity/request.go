package entity

import "time"

// Request is a logged need for a station visit or a specific part,
// tied to one vehicle/station. References Vehicle loosely by
// vehicle_number; no enforced foreign key.
type Request struct {
	ID            string     `json:"id" gorm:"primaryKey;size:32"`
	VehicleType   string     `json:"vehicle_type" gorm:"size:10;not null"`
	VehicleNumber string     `json:"vehicle_number" gorm:"size:50;not null;index"`
	StationCode   string     `json:"station_code" gorm:"size:10;not null"`
	RequestType   string     `json:"request_type" gorm:"size:20;not null"`
	PartNumber    string     `json:"part_number,omitempty" gorm:"size:100"`
	Qty           *int       `json:"qty,omitempty"`
	Fastener      *bool      `json:"fastener" gorm:"index"`
	Status        string     `json:"status" gorm:"size:20;default:open;index"`
	RequestedBy   string     `json:"requested_by" gorm:"size:100;not null;index"`
	RequestDate   time.Time  `json:"request_date" gorm:"index"`
	DeliveryDate  *time.Time `json:"delivery_date,omitempty"`
}

func (Request) TableName() string {
	return "requests"
}

// Request types
const (
	RequestTypeStation = "station"
	RequestTypePart    = "part"
)

// Request status values. The only allowed transition is open → delivered.
const (
	RequestStatusOpen      = "open"
	RequestStatusDelivered = "delivered"
)

// FastenerSet reports whether the fastener flag is explicitly true.
// A nil flag counts the same as explicit false.
func (r *Request) FastenerSet() bool {
	return r.Fastener != nil && *r.Fastener
}
