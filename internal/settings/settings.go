package settings

import (
	"encoding/json"

	"workclock-backend/internal/timeutil"

	apperrors "workclock-backend/internal/errors"
)

// SortCriteria selects the column the presence view is ordered by.
type SortCriteria string

const (
	SortByName     SortCriteria = "name"
	SortByStatus   SortCriteria = "status"
	SortByTimezone SortCriteria = "timezone"
)

// IsValid checks if the sort criteria is one of the known values
func (s SortCriteria) IsValid() bool {
	switch s {
	case SortByName, SortByStatus, SortByTimezone:
		return true
	}
	return false
}

// SortDirection is the ordering direction of the presence view.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the sort direction is one of the known values
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// Override is a per-person schedule override. Absent fields inherit the
// defaults. UpdatedAt is unix milliseconds, stamped on every edit.
type Override struct {
	Timezone  string `json:"timezone,omitempty"`
	StartHour string `json:"startHour,omitempty" validate:"omitempty,datetime=15:04"`
	EndHour   string `json:"endHour,omitempty" validate:"omitempty,datetime=15:04"`
	Source    string `json:"source,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}

// Preferences is the single persisted settings aggregate. It is loaded once,
// held in memory, and every mutation writes the whole object back; callers
// merge their delta into the latest stored copy before overwriting.
//
// UserTimezones is the deprecated predecessor of UserOverrides and is still
// read for backward compatibility, at lower precedence.
type Preferences struct {
	Timezone       string              `json:"timezone,omitempty"`
	StartHour      string              `json:"startHour" validate:"omitempty,datetime=15:04"`
	EndHour        string              `json:"endHour" validate:"omitempty,datetime=15:04"`
	WorkDays       []string            `json:"workDays"`
	RowColorMode   bool                `json:"rowColorMode"`
	ShowOnlineOnly bool                `json:"showOnlineOnly"`
	SortCriteria   SortCriteria        `json:"sortCriteria"`
	SortDirection  SortDirection       `json:"sortDirection"`
	PageSize       int                 `json:"pageSize"`
	UserOverrides  map[string]Override `json:"userOverrides,omitempty"`
	UserTimezones  map[string]string   `json:"userTimezones,omitempty"`
}

const (
	DefaultStartHour = "09:00"
	DefaultEndHour   = "17:00"
	DefaultPageSize  = 10
)

// Defaults returns the preferences used when nothing has been persisted yet.
func Defaults() Preferences {
	p := Preferences{}
	p.applyDefaults()
	return p
}

// Normalize decodes a persisted preferences payload into a usable aggregate.
// The payload may be a JSON object or a double-encoded JSON string (older
// clients stored it both ways); missing or unknown fields default rather
// than fail. A payload that cannot be decoded at all yields the defaults
// together with ErrMalformedPreferences so the caller can log the recovery.
func Normalize(raw json.RawMessage) (Preferences, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return Defaults(), nil
	}

	data := []byte(raw)
	// Unwrap the string-encoded variant first.
	var wrapped string
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped == "" {
			return Defaults(), nil
		}
		data = []byte(wrapped)
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return Defaults(), apperrors.ErrMalformedPreferences
	}
	prefs.applyDefaults()
	return prefs, nil
}

func (p *Preferences) applyDefaults() {
	if p.StartHour == "" {
		p.StartHour = DefaultStartHour
	}
	if p.EndHour == "" {
		p.EndHour = DefaultEndHour
	}
	if p.WorkDays == nil {
		p.WorkDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}
	}
	if !p.SortCriteria.IsValid() {
		p.SortCriteria = SortByName
	}
	if !p.SortDirection.IsValid() {
		p.SortDirection = SortAsc
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.UserOverrides == nil {
		p.UserOverrides = map[string]Override{}
	}
}

// Schedule returns the default work window as minutes since midnight.
func (p Preferences) Schedule() timeutil.Schedule {
	return timeutil.ScheduleFromClock(p.StartHour, p.EndHour)
}

// Encode serializes the aggregate for persistence. The whole object is
// always written; there are no partial updates.
func (p Preferences) Encode() (json.RawMessage, error) {
	return json.Marshal(p)
}
