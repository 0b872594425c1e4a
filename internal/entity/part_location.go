package entity

// PartLocation maps a part number to a storage location. A part may
// appear at several locations. Lookup-only, maintained externally.
type PartLocation struct {
	ID     string `json:"id" gorm:"primaryKey;size:32"`
	PartNo string `json:"part_no" gorm:"size:100;not null;index"`
	Loc    string `json:"loc" gorm:"size:100;not null"`
}

func (PartLocation) TableName() string {
	return "part_locations"
}
