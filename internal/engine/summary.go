package engine

import (
	"errors"
	"math"
	"time"

	"github.com/ositola/schedule-planner/internal/model"
)

// ErrDegenerateSchedule is returned when a combination carries no meetings
// at all.  That can only happen on broken catalog data; min/max times are
// undefined for it, so the run fails instead of guessing.
var ErrDegenerateSchedule = errors.New("schedule has no meetings")

// Summarize reduces one accepted combination into its persisted summary:
// credit total, null-aware mean instructor rating, per-day footprint,
// earliest start and latest end, and the campus pattern.  Pure function;
// createdAt is stamped by the caller so a whole run shares one timestamp.
func (c Checker) Summarize(sections []model.Section, createdAt time.Time) (model.Schedule, error) {
	var meetings []model.Meeting
	for _, sec := range sections {
		meetings = append(meetings, sec.Meetings...)
	}
	if len(meetings) == 0 {
		return model.Schedule{}, ErrDegenerateSchedule
	}

	s := model.Schedule{
		NumSections: len(sections),
		CreatedAt:   createdAt,
		Sections:    make([]model.ScheduleSection, 0, len(sections)),
	}

	// Sections without a rating do not participate in the mean; zero rated
	// sections leaves AvgRating nil, never zero.
	var ratingSum float64
	var rated int
	for _, sec := range sections {
		s.TotalCredits += sec.Credits
		if sec.Rating != nil {
			ratingSum += *sec.Rating
			rated++
		}
		s.Sections = append(s.Sections, model.ScheduleSection{
			Subject:     sec.Subject,
			Number:      sec.Number,
			SectionCode: sec.SectionCode,
			Title:       sec.Title,
			Credits:     sec.Credits,
		})
	}
	if rated > 0 {
		avg := math.Round(ratingSum/float64(rated)*100) / 100
		s.AvgRating = &avg
	}

	s.EarliestStart = meetings[0].Start
	s.LatestEnd = meetings[0].End
	campuses := map[string]bool{}
	for _, m := range meetings {
		if m.Start < s.EarliestStart {
			s.EarliestStart = m.Start
		}
		if m.End > s.LatestEnd {
			s.LatestEnd = m.End
		}
		switch m.Day {
		case model.Mon:
			s.MeetsMon = true
		case model.Tue:
			s.MeetsTue = true
		case model.Wed:
			s.MeetsWed = true
		case model.Thu:
			s.MeetsThu = true
		case model.Fri:
			s.MeetsFri = true
		case model.Sat:
			s.MeetsSat = true
		}
		if m.Location != c.Remote {
			campuses[m.Location] = true
		}
	}

	switch len(campuses) {
	case 0:
		s.CampusPattern = model.PatternOnlineOnly
	case 1:
		for campus := range campuses {
			s.CampusPattern = campus + "-only"
		}
	default:
		s.CampusPattern = model.PatternMixed
	}
	return s, nil
}
