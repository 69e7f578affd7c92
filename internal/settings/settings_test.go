package settings_test

import (
	"encoding/json"
	"testing"

	apperrors "workclock-backend/internal/errors"
	"workclock-backend/internal/settings"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	prefs := settings.Defaults()

	assert.Equal(t, "09:00", prefs.StartHour)
	assert.Equal(t, "17:00", prefs.EndHour)
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, prefs.WorkDays)
	assert.Equal(t, settings.SortByName, prefs.SortCriteria)
	assert.Equal(t, settings.SortAsc, prefs.SortDirection)
	assert.Equal(t, 10, prefs.PageSize)
	assert.Empty(t, prefs.Timezone)
	assert.NotNil(t, prefs.UserOverrides)
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectErr   error
		verify      func(t *testing.T, p settings.Preferences)
	}{
		{
			name: "Plain object",
			raw:  `{"timezone":"Europe/Berlin","startHour":"08:00","pageSize":25}`,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, "Europe/Berlin", p.Timezone)
				assert.Equal(t, "08:00", p.StartHour)
				assert.Equal(t, "17:00", p.EndHour)
				assert.Equal(t, 25, p.PageSize)
			},
		},
		{
			name: "Double-encoded string payload",
			raw:  `"{\"timezone\":\"Asia/Tokyo\",\"endHour\":\"18:30\"}"`,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, "Asia/Tokyo", p.Timezone)
				assert.Equal(t, "18:30", p.EndHour)
				assert.Equal(t, "09:00", p.StartHour)
			},
		},
		{
			name: "Empty payload",
			raw:  "",
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.Defaults(), p)
			},
		},
		{
			name: "JSON null",
			raw:  "null",
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.Defaults(), p)
			},
		},
		{
			name: "Empty string payload",
			raw:  `""`,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.Defaults(), p)
			},
		},
		{
			name:      "Garbage payload recovers to defaults",
			raw:       `"[object Object]"`,
			expectErr: apperrors.ErrMalformedPreferences,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.Defaults(), p)
			},
		},
		{
			name:      "Array payload recovers to defaults",
			raw:       `[1,2,3]`,
			expectErr: apperrors.ErrMalformedPreferences,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.Defaults(), p)
			},
		},
		{
			name: "Unknown fields are ignored",
			raw:  `{"timezone":"UTC","futureField":{"nested":true}}`,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, "UTC", p.Timezone)
			},
		},
		{
			name: "Invalid sort values default",
			raw:  `{"sortCriteria":"shoe-size","sortDirection":"sideways","pageSize":-3}`,
			verify: func(t *testing.T, p settings.Preferences) {
				assert.Equal(t, settings.SortByName, p.SortCriteria)
				assert.Equal(t, settings.SortAsc, p.SortDirection)
				assert.Equal(t, 10, p.PageSize)
			},
		},
		{
			name: "Empty workDays list is preserved",
			raw:  `{"workDays":[]}`,
			verify: func(t *testing.T, p settings.Preferences) {
				// An explicitly empty set means "never working", not the default week.
				assert.NotNil(t, p.WorkDays)
				assert.Len(t, p.WorkDays, 0)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prefs, err := settings.Normalize(json.RawMessage(tc.raw))
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
			tc.verify(t, prefs)
		})
	}
}

func TestNormalizeOverridesAndLegacyMap(t *testing.T) {
	raw := `{
		"userOverrides": {
			"12345": {"timezone":"America/Toronto","startHour":"10:00","endHour":"18:00","source":"manual","updatedAt":1714060800000}
		},
		"userTimezones": {"12345":"Europe/London","Jane Doe":"Asia/Seoul"}
	}`

	prefs, err := settings.Normalize(json.RawMessage(raw))
	assert.NoError(t, err)

	ov, ok := prefs.UserOverrides["12345"]
	assert.True(t, ok)
	assert.Equal(t, "America/Toronto", ov.Timezone)
	assert.Equal(t, "10:00", ov.StartHour)
	assert.Equal(t, int64(1714060800000), ov.UpdatedAt)

	assert.Equal(t, "Europe/London", prefs.UserTimezones["12345"])
	assert.Equal(t, "Asia/Seoul", prefs.UserTimezones["Jane Doe"])
}

func TestEncodeRoundTrip(t *testing.T) {
	prefs := settings.Defaults()
	prefs.Timezone = "Pacific/Auckland"
	prefs.UserOverrides["42"] = settings.Override{Timezone: "UTC", Source: "manual"}

	raw, err := prefs.Encode()
	assert.NoError(t, err)

	decoded, err := settings.Normalize(raw)
	assert.NoError(t, err)
	assert.Equal(t, prefs, decoded)
}

func TestSchedule(t *testing.T) {
	prefs := settings.Defaults()
	sched := prefs.Schedule()
	assert.Equal(t, 540, sched.Start)
	assert.Equal(t, 1020, sched.End)
}

func TestSortEnums(t *testing.T) {
	assert.True(t, settings.SortByName.IsValid())
	assert.True(t, settings.SortByStatus.IsValid())
	assert.True(t, settings.SortByTimezone.IsValid())
	assert.False(t, settings.SortCriteria("progress").IsValid())

	assert.True(t, settings.SortAsc.IsValid())
	assert.True(t, settings.SortDesc.IsValid())
	assert.False(t, settings.SortDirection("").IsValid())
}
