package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// JSONB stores a loose key/value document in a jsonb column
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to scan JSONB: %v", value)
	}
	return json.Unmarshal(bytes, j)
}

// ChangeLog is an immutable audit record of one user-triggered action.
// Never updated or deleted by the application. EntityID is a free-form
// identifier: sometimes the mutated row's primary key, sometimes a key
// generated for the audit row itself.
type ChangeLog struct {
	ID          string    `json:"id" gorm:"primaryKey;size:32"`
	Username    string    `json:"username" gorm:"size:100;not null;index"`
	UserRole    string    `json:"user_role" gorm:"size:20"`
	ActionType  string    `json:"action_type" gorm:"size:20;not null;index"`
	EntityType  string    `json:"entity_type" gorm:"size:50"`
	EntityID    string    `json:"entity_id" gorm:"size:64"`
	OldValues   JSONB     `json:"old_values,omitempty" gorm:"type:jsonb"`
	NewValues   JSONB     `json:"new_values,omitempty" gorm:"type:jsonb"`
	Description string    `json:"description" gorm:"type:text"`
	IPAddress   string    `json:"ip_address" gorm:"size:45"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

func (ChangeLog) TableName() string {
	return "change_logs"
}

// Audit action kinds
const (
	ActionLogin  = "login"
	ActionLogout = "logout"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)
