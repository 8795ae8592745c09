// Package engine contains the schedule generation core: pairwise meeting
// conflict predicates, exhaustive enumeration of section combinations, and
// the summary aggregation of accepted combinations.  Everything here is
// pure computation over model values; persistence is the caller's concern.
package engine

import "github.com/ositola/schedule-planner/internal/model"

// Checker evaluates conflict predicates between meetings.  Remote is the
// location sentinel exempt from the campus-switch rule; the zero value
// falls back to model.RemoteLocation.
type Checker struct {
	Remote string
}

// NewChecker returns a Checker using the given remote sentinel, or the
// default when empty.
func NewChecker(remote string) Checker {
	if remote == "" {
		remote = model.RemoteLocation
	}
	return Checker{Remote: remote}
}

// TimeConflict reports whether two meetings overlap in time.  Meetings on
// different days never conflict.  The interval test is half-open: a meeting
// ending exactly when another starts is not a conflict.
func (c Checker) TimeConflict(a, b model.Meeting) bool {
	if a.Day != b.Day {
		return false
	}
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	return start < end
}

// CampusSwitch reports whether two meetings would require commuting between
// two different physical campuses on the same day.  Remote meetings never
// participate: two remote meetings, or a remote and a physical one, are fine.
func (c Checker) CampusSwitch(a, b model.Meeting) bool {
	if a.Day != b.Day {
		return false
	}
	if a.Location == c.Remote || b.Location == c.Remote {
		return false
	}
	return a.Location != b.Location
}

// Valid reports whether a full combination of sections is conflict-free:
// no pair of meetings, pooled across all sections, triggers either
// predicate.  Quadratic in the meeting count, which stays in single digits
// for realistic course loads.
func (c Checker) Valid(sections []model.Section) bool {
	var all []model.Meeting
	for _, sec := range sections {
		all = append(all, sec.Meetings...)
	}
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			if c.CampusSwitch(all[i], all[j]) {
				return false
			}
			if c.TimeConflict(all[i], all[j]) {
				return false
			}
		}
	}
	return true
}
