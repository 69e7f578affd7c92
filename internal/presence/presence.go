package presence

import (
	"time"

	"workclock-backend/internal/settings"
	"workclock-backend/internal/timeutil"
)

// Person is a directory entry as seen by the projection engine. The engine
// never mutates it; identity and the optionally attached timezone are owned
// by the external directory.
type Person struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Timezone  string `json:"timezone,omitempty"`
}

// Effective is the schedule actually used for a person after applying the
// override precedence chain. Assumed is true when the timezone was not
// explicitly attached to the person or their override, i.e. it was inferred
// from the legacy mapping or the defaults and should be marked "(assumed)".
type Effective struct {
	Timezone  string
	StartHour string
	EndHour   string
	Assumed   bool
}

// Schedule returns the effective work window in minutes since midnight.
func (e Effective) Schedule() timeutil.Schedule {
	return timeutil.ScheduleFromClock(e.StartHour, e.EndHour)
}

// ResolveEffective merges the default preferences with the person's
// override. Precedence, highest first: explicit override fields, a timezone
// attached to the person record, the legacy userTimezones mapping, the
// defaults. Override and legacy lookups try the person id key first; a
// display-name key is honored only as a deprecated fallback when no id
// entry exists.
func ResolveEffective(p Person, prefs settings.Preferences) Effective {
	eff := Effective{StartHour: prefs.StartHour, EndHour: prefs.EndHour}

	ov, hasOverride := prefs.UserOverrides[p.ID]
	if !hasOverride && p.Name != "" {
		ov, hasOverride = prefs.UserOverrides[p.Name]
	}
	if hasOverride {
		if ov.StartHour != "" {
			eff.StartHour = ov.StartHour
		}
		if ov.EndHour != "" {
			eff.EndHour = ov.EndHour
		}
	}

	switch {
	case hasOverride && ov.Timezone != "":
		eff.Timezone = ov.Timezone
	case p.Timezone != "":
		eff.Timezone = p.Timezone
	default:
		eff.Assumed = true
		if tz, ok := legacyZone(p, prefs.UserTimezones); ok {
			eff.Timezone = tz
		} else {
			eff.Timezone = prefs.Timezone
		}
	}
	return eff
}

func legacyZone(p Person, legacy map[string]string) (string, bool) {
	if len(legacy) == 0 {
		return "", false
	}
	if tz, ok := legacy[p.ID]; ok && tz != "" {
		return tz, true
	}
	if p.Name != "" {
		if tz, ok := legacy[p.Name]; ok && tz != "" {
			return tz, true
		}
	}
	return "", false
}

// PersonView is the derived, never persisted presentation record for one
// person. It is rebuilt from current inputs on every projection pass.
type PersonView struct {
	PersonID          string          `json:"person_id"`
	Name              string          `json:"name"`
	AvatarURL         string          `json:"avatar_url,omitempty"`
	DisplayTime       string          `json:"display_time"`
	Status            timeutil.Status `json:"status"`
	Progress          float64         `json:"progress"`
	EffectiveTimezone string          `json:"effective_timezone"`
	TimezoneAssumed   bool            `json:"timezone_assumed"`
}

// Project resolves the presence view for every person at the given instant.
// It is a pure function of its inputs: O(n) in persons, no inter-person
// state, and an unresolvable timezone degrades only the affected person to
// off/placeholder/zero rather than aborting the pass.
func Project(persons []Person, prefs settings.Preferences, now time.Time) []PersonView {
	views := make([]PersonView, len(persons))
	for i, p := range persons {
		eff := ResolveEffective(p, prefs)
		sched := eff.Schedule()
		status, label := timeutil.ResolveStatus(now, eff.Timezone, sched, prefs.WorkDays)

		views[i] = PersonView{
			PersonID:          p.ID,
			Name:              p.Name,
			AvatarURL:         p.AvatarURL,
			DisplayTime:       label,
			Status:            status,
			Progress:          timeutil.Progress(now, eff.Timezone, sched),
			EffectiveTimezone: eff.Timezone,
			TimezoneAssumed:   eff.Assumed,
		}
	}
	return views
}
