// Package export renders the persisted result set as a CSV file for
// downstream tools (spreadsheets, advising systems) and is consumed by the
// export command, which can also drop the file on an SFTP server.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/ositola/schedule-planner/internal/model"
)

// ScheduleRow is one schedule in the export file.  Sections are collapsed
// into a single pipe-separated column ("CSC 208-001A|MTH 265-002B") so the
// file stays one row per schedule.
type ScheduleRow struct {
	ScheduleID      uint64   `csv:"schedule_id"`
	TotalCredits    int      `csv:"total_credits"`
	InstructorScore *float64 `csv:"total_instructor_score"`
	NumSections     int      `csv:"num_sections"`
	MeetsMon        bool     `csv:"meets_mon"`
	MeetsTue        bool     `csv:"meets_tue"`
	MeetsWed        bool     `csv:"meets_wed"`
	MeetsThu        bool     `csv:"meets_thu"`
	MeetsFri        bool     `csv:"meets_fri"`
	MeetsSat        bool     `csv:"meets_sat"`
	EarliestStart   string   `csv:"earliest_start"`
	LatestEnd       string   `csv:"latest_end"`
	CampusPattern   string   `csv:"campus_pattern"`
	Sections        string   `csv:"sections"`
}

// ToRows flattens schedules into export rows, preserving order.
func ToRows(schedules []model.Schedule) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(schedules))
	for i := range schedules {
		s := &schedules[i]
		parts := make([]string, 0, len(s.Sections))
		for _, sec := range s.Sections {
			parts = append(parts, fmt.Sprintf("%s %d-%s", sec.Subject, sec.Number, sec.SectionCode))
		}
		rows = append(rows, ScheduleRow{
			ScheduleID:      s.ID,
			TotalCredits:    s.TotalCredits,
			InstructorScore: s.AvgRating,
			NumSections:     s.NumSections,
			MeetsMon:        s.MeetsMon,
			MeetsTue:        s.MeetsTue,
			MeetsWed:        s.MeetsWed,
			MeetsThu:        s.MeetsThu,
			MeetsFri:        s.MeetsFri,
			MeetsSat:        s.MeetsSat,
			EarliestStart:   s.EarliestStart.String(),
			LatestEnd:       s.LatestEnd.String(),
			CampusPattern:   s.CampusPattern,
			Sections:        strings.Join(parts, "|"),
		})
	}
	return rows
}

// WriteSchedulesCSV writes schedules to w in the export format.
func WriteSchedulesCSV(w io.Writer, schedules []model.Schedule) error {
	return gocsv.Marshal(ToRows(schedules), w)
}
