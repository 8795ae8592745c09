// Package model defines the value types of the scheduling domain: weekdays,
// clock times, meetings, sections and persisted schedules.  All types are
// plain data and are treated as immutable once constructed.
package model

import (
	"errors"
	"fmt"
	"time"
)

// RemoteLocation is the catalog sentinel for a meeting with no physical
// campus.  Remote meetings are exempt from commute constraints.
const RemoteLocation = "Zoom"

// Weekday identifies a day of the week, Monday first.  The catalog encodes
// days as three-letter abbreviations ("Mon".."Sun").
type Weekday int

// Weekday values in catalog order.
const (
	Mon Weekday = iota
	Tue
	Wed
	Thu
	Fri
	Sat
	Sun
)

var dayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ErrUnknownWeekday is returned when a day string is not one of the seven
// recognised abbreviations.
var ErrUnknownWeekday = errors.New("unknown weekday")

// String returns the three-letter abbreviation for the weekday.
func (d Weekday) String() string {
	if d < Mon || d > Sun {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// ParseWeekday converts a catalog day abbreviation into a Weekday.
func ParseWeekday(s string) (Weekday, error) {
	for i, name := range dayNames {
		if s == name {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// ClockTime is a time of day stored as seconds since midnight.  It orders
// naturally with <, which is all the overlap checks need.
type ClockTime int

// ErrUnparsableTime is returned when a time string matches neither of the
// two accepted catalog formats.
var ErrUnparsableTime = errors.New("unparsable time of day")

// ParseClock parses a catalog time string.  The catalog emits either
// "HH:MM" or "HH:MM:SS"; the form with seconds is selected when the string
// is longer than five characters.
func ParseClock(s string) (ClockTime, error) {
	layout := "15:04"
	if len(s) > 5 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparsableTime, s)
	}
	return ClockTime(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
}

// String formats the time as "HH:MM:SS", the form MySQL TIME columns use.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)/60%60, int(t)%60)
}

// Meeting is one weekly recurring time block of a section, tied to a single
// day and location.  Location is either a campus name or RemoteLocation.
type Meeting struct {
	Day      Weekday   // day_of_week
	Start    ClockTime // start_time
	End      ClockTime // end_time
	Location string    // campus
}
