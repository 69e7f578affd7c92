package testutils

import (
	"encoding/json"
	"time"

	"workclock-backend/internal/database/models"

	"github.com/google/uuid"
)

// PersonFactory provides methods to create test Person data
type PersonFactory struct{}

// NewPersonFactory creates a new PersonFactory
func NewPersonFactory() *PersonFactory {
	return &PersonFactory{}
}

// Create creates a test Person with default values
func (f *PersonFactory) Create() *models.Person {
	id := uuid.New()
	return &models.Person{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		BoardID:    "BOARD-1",
		ExternalID: "u-" + id.String()[:8],
		Name:       "John Doe",
		AvatarURL:  "https://example.com/avatar.png",
		Timezone:   "America/New_York",
	}
}

// WithName sets a custom external ID and display name
func (f *PersonFactory) WithName(externalID, name string) *models.Person {
	p := f.Create()
	p.ExternalID = externalID
	p.Name = name
	return p
}

// WithTimezone sets a custom timezone
func (f *PersonFactory) WithTimezone(tz string) *models.Person {
	p := f.Create()
	p.Timezone = tz
	return p
}

// SettingFactory provides methods to create test Setting data
type SettingFactory struct{}

// NewSettingFactory creates a new SettingFactory
func NewSettingFactory() *SettingFactory {
	return &SettingFactory{}
}

// Create creates a test Setting with default values
func (f *SettingFactory) Create() *models.Setting {
	return &models.Setting{
		Key:       "workclock:user:settings",
		Value:     json.RawMessage(`{"timezone":"UTC","startHour":"09:00","endHour":"17:00"}`),
		UpdatedAt: time.Now(),
	}
}

// WithKey sets a custom storage key
func (f *SettingFactory) WithKey(key string) *models.Setting {
	s := f.Create()
	s.Key = key
	return s
}

// WithValue sets a custom document
func (f *SettingFactory) WithValue(value json.RawMessage) *models.Setting {
	s := f.Create()
	s.Value = value
	return s
}
