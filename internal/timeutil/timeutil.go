package timeutil

import (
	"strconv"
	"strings"
	"time"
)

// Status is the lifecycle status of a person relative to their work schedule.
type Status string

const (
	StatusWorking  Status = "working"
	StatusLastHour Status = "lastHour"
	StatusOff      Status = "off"
)

// IsValid checks if the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusWorking, StatusLastHour, StatusOff:
		return true
	}
	return false
}

// Rank returns the sort rank of the status: working < lastHour < off
func (s Status) Rank() int {
	switch s {
	case StatusWorking:
		return 0
	case StatusLastHour:
		return 1
	default:
		return 2
	}
}

// Online reports whether the status counts as online (working or lastHour)
func (s Status) Online() bool {
	return s == StatusWorking || s == StatusLastHour
}

// OffLabel is the local-time placeholder shown when no timezone resolves.
const OffLabel = "—"

const minutesPerDay = 1440

// Schedule is a daily work window in minutes since midnight.
// Start == End means a full-day shift; End < Start means an overnight shift
// that wraps past midnight. Both are legal and are never rejected.
type Schedule struct {
	Start int
	End   int
}

// ParseClock converts an "HH:MM" string to minutes since midnight.
// Deliberately permissive: the hour component is any integer (unparsable
// input counts as 0) and the minute component defaults to 0 when absent or
// non-numeric, so "25:99" parses to 1599. Callers depend on this leniency
// for values persisted by older clients.
func ParseClock(hhmm string) int {
	parts := strings.Split(hhmm, ":")
	h, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
	m := 0
	if len(parts) > 1 {
		if v, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			m = v
		}
	}
	return h*60 + m
}

// ScheduleFromClock builds a Schedule from "HH:MM" start and end strings.
func ScheduleFromClock(start, end string) Schedule {
	return Schedule{Start: ParseClock(start), End: ParseClock(end)}
}

// ResolveStatus computes the lifecycle status and local-time label for the
// given instant in the given IANA zone. It is total: any input, including an
// unresolvable zone, yields a value and never panics. An unresolvable zone
// yields (StatusOff, OffLabel). A non-workday yields StatusOff but the local
// time label is still produced.
//
// The status bands assume a same-day schedule (Start < End); the last hour
// starts at max(Start, End-60).
func ResolveStatus(now time.Time, tz string, sched Schedule, workDays []string) (Status, string) {
	loc, ok := loadZone(tz)
	if !ok {
		return StatusOff, OffLabel
	}
	local := now.In(loc)
	label := clockLabel(local)

	if !containsDay(workDays, local.Format("Mon")) {
		return StatusOff, label
	}

	cur := local.Hour()*60 + local.Minute()
	lastHourStart := sched.End - 60
	if sched.Start > lastHourStart {
		lastHourStart = sched.Start
	}

	switch {
	case cur >= sched.Start && cur < lastHourStart:
		return StatusWorking, label
	case cur >= lastHourStart && cur < sched.End:
		return StatusLastHour, label
	default:
		return StatusOff, label
	}
}

// Progress returns the fraction of the workday elapsed at the given instant,
// in [0,1]. Full-day shifts (Start == End) progress linearly over the whole
// day; overnight shifts (End < Start) wrap past midnight. A zone that fails
// to resolve yields 0.
func Progress(now time.Time, tz string, sched Schedule) float64 {
	loc, ok := loadZone(tz)
	if !ok {
		return 0
	}
	local := now.In(loc)
	cur := local.Hour()*60 + local.Minute()

	switch {
	case sched.Start == sched.End:
		return clamp01(float64(cur) / minutesPerDay)
	case sched.End > sched.Start:
		span := sched.End - sched.Start
		return clamp01(float64(cur-sched.Start) / float64(span))
	default:
		// Overnight shift: inside iff cur >= Start or cur <= End.
		if cur < sched.Start && cur > sched.End {
			return 0
		}
		span := minutesPerDay - sched.Start + sched.End
		elapsed := cur - sched.Start
		if cur < sched.Start {
			elapsed = minutesPerDay - sched.Start + cur
		}
		return clamp01(float64(elapsed) / float64(span))
	}
}

func loadZone(tz string) (*time.Location, bool) {
	if tz == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// clockLabel formats a local time the way the board displays it, e.g. "4:05 p.m."
func clockLabel(t time.Time) string {
	label := t.Format("3:04 pm")
	label = strings.Replace(label, "am", "a.m.", 1)
	label = strings.Replace(label, "pm", "p.m.", 1)
	return label
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
