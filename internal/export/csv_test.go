package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/ositola/schedule-planner/internal/model"
)

func sampleSchedules() []model.Schedule {
	rating := 4.25
	start, _ := model.ParseClock("09:00")
	end, _ := model.ParseClock("15:15")
	return []model.Schedule{
		{
			ID: 1, TotalCredits: 10, AvgRating: &rating, NumSections: 3,
			MeetsMon: true, MeetsWed: true,
			EarliestStart: start, LatestEnd: end,
			CampusPattern: "Annandale-only",
			CreatedAt:     time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
			Sections: []model.ScheduleSection{
				{Subject: "CSC", Number: 208, SectionCode: "001", Title: "Intro", Credits: 3},
				{Subject: "MTH", Number: 265, SectionCode: "002", Title: "Calc", Credits: 4},
			},
		},
		{
			ID: 2, TotalCredits: 7, NumSections: 2,
			MeetsTue:      true,
			EarliestStart: start, LatestEnd: end,
			CampusPattern: model.PatternOnlineOnly,
		},
	}
}

func TestToRows(t *testing.T) {
	rows := ToRows(sampleSchedules())
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Sections != "CSC 208-001|MTH 265-002" {
		t.Errorf("unexpected sections column: %q", rows[0].Sections)
	}
	if rows[0].InstructorScore == nil || *rows[0].InstructorScore != 4.25 {
		t.Errorf("rating not carried over: %v", rows[0].InstructorScore)
	}
	if rows[1].InstructorScore != nil {
		t.Errorf("nil rating must stay nil, got %v", *rows[1].InstructorScore)
	}
	if rows[0].EarliestStart != "09:00:00" || rows[0].LatestEnd != "15:15:00" {
		t.Errorf("unexpected time formatting: %q / %q", rows[0].EarliestStart, rows[0].LatestEnd)
	}
}

func TestWriteSchedulesCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSchedulesCSV(&buf, sampleSchedules()); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "schedule_id,") {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Annandale-only") {
		t.Errorf("row 1 missing campus pattern: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Online-only") {
		t.Errorf("row 2 missing campus pattern: %q", lines[2])
	}
}
