package model

import "time"

// Campus pattern classifications.  Single-campus schedules use the campus
// name itself with the "-only" suffix, e.g. "Annandale-only".
const (
	PatternOnlineOnly = "Online-only"
	PatternMixed      = "Mixed"
)

// ScheduleSection is the persisted reference to one section of a schedule.
// Only identity and credit fields are stored; meeting details stay in the
// catalog and are joined back in on detail reads.
type ScheduleSection struct {
	Subject     string    // schedule_sections.subject_code
	Number      int       // schedule_sections.course_number
	SectionCode string    // schedule_sections.section_code
	Title       string    // schedule_sections.course_title
	Credits     int       // schedule_sections.credits
	Meetings    []Meeting // populated on detail reads, empty otherwise
}

// Schedule is the derived summary of one accepted combination of sections,
// written to storage as a unit together with its section rows.
//
// AvgRating is the null-aware mean of instructor ratings: sections without
// a rating do not participate, and the field is nil when no section is
// rated.  MeetsMon..MeetsSat flag the days touched by any meeting.
type Schedule struct {
	ID            uint64            // schedules.id, assigned on insert
	TotalCredits  int               // schedules.total_credits
	AvgRating     *float64          // schedules.total_instructor_score (nullable)
	NumSections   int               // schedules.num_sections
	MeetsMon      bool              // schedules.meets_mon
	MeetsTue      bool              // schedules.meets_tue
	MeetsWed      bool              // schedules.meets_wed
	MeetsThu      bool              // schedules.meets_thu
	MeetsFri      bool              // schedules.meets_fri
	MeetsSat      bool              // schedules.meets_sat
	EarliestStart ClockTime         // schedules.earliest_start
	LatestEnd     ClockTime         // schedules.latest_end
	CampusPattern string            // schedules.campus_pattern
	CreatedAt     time.Time         // schedules.created_at
	Sections      []ScheduleSection // child rows, in target-course order
}

// MeetsDay reports whether the schedule has any meeting on the given day.
// Sundays are never flagged; the persisted footprint covers Mon..Sat.
func (s *Schedule) MeetsDay(d Weekday) bool {
	switch d {
	case Mon:
		return s.MeetsMon
	case Tue:
		return s.MeetsTue
	case Wed:
		return s.MeetsWed
	case Thu:
		return s.MeetsThu
	case Fri:
		return s.MeetsFri
	case Sat:
		return s.MeetsSat
	}
	return false
}
