package models

import (
	"encoding/json"
	"time"
)

// Setting stores one preferences aggregate as an opaque JSON document. The
// whole aggregate is read and written as a unit under a fixed key, so older
// and newer writers can share the row without a schema version.
type Setting struct {
	Key       string          `json:"key" gorm:"size:128;primary_key" validate:"required,max=128"`
	Value     json.RawMessage `json:"value" gorm:"type:jsonb;not null"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}
