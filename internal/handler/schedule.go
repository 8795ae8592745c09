package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ositola/schedule-planner/internal/model"
	"github.com/ositola/schedule-planner/internal/repository"
)

// ScheduleHandler serves the read side of the generated result set.
type ScheduleHandler struct {
	Repo *repository.ScheduleRepo
}

// ScheduleSummary is the JSON shape of one schedule in list responses.
// Field names follow the stored columns; times are "HH:MM:SS" strings.
type ScheduleSummary struct {
	ScheduleID      uint64   `json:"schedule_id"`
	TotalCredits    int      `json:"total_credits"`
	InstructorScore *float64 `json:"total_instructor_score"`
	NumSections     int      `json:"num_sections"`
	MeetsMon        bool     `json:"meets_mon"`
	MeetsTue        bool     `json:"meets_tue"`
	MeetsWed        bool     `json:"meets_wed"`
	MeetsThu        bool     `json:"meets_thu"`
	MeetsFri        bool     `json:"meets_fri"`
	MeetsSat        bool     `json:"meets_sat"`
	EarliestStart   string   `json:"earliest_start"`
	LatestEnd       string   `json:"latest_end"`
	CampusPattern   string   `json:"campus_pattern"`
	CreatedAt       string   `json:"created_at"`
}

// MeetingResponse is one weekly meeting of a section in detail responses.
type MeetingResponse struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Campus    string `json:"campus"`
}

// SectionResponse is one section of a schedule in detail responses.
type SectionResponse struct {
	SubjectCode  string            `json:"subject_code"`
	CourseNumber int               `json:"course_number"`
	SectionCode  string            `json:"section_code"`
	CourseTitle  string            `json:"course_title"`
	Credits      int               `json:"credits"`
	Meetings     []MeetingResponse `json:"meetings"`
}

// ScheduleDetail is the full schedule response including its sections.
type ScheduleDetail struct {
	ScheduleSummary
	Sections []SectionResponse `json:"sections"`
}

func toSummary(s *model.Schedule) ScheduleSummary {
	return ScheduleSummary{
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
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toDetail(s *model.Schedule) ScheduleDetail {
	d := ScheduleDetail{
		ScheduleSummary: toSummary(s),
		Sections:        make([]SectionResponse, 0, len(s.Sections)),
	}
	for _, sec := range s.Sections {
		sr := SectionResponse{
			SubjectCode:  sec.Subject,
			CourseNumber: sec.Number,
			SectionCode:  sec.SectionCode,
			CourseTitle:  sec.Title,
			Credits:      sec.Credits,
			Meetings:     make([]MeetingResponse, 0, len(sec.Meetings)),
		}
		for _, m := range sec.Meetings {
			sr.Meetings = append(sr.Meetings, MeetingResponse{
				DayOfWeek: m.Day.String(),
				StartTime: m.Start.String(),
				EndTime:   m.End.String(),
				Campus:    m.Location,
			})
		}
		d.Sections = append(d.Sections, sr)
	}
	return d
}

// List returns schedule summaries.  Supported query parameters:
// campus_pattern, min_credits, max_credits, free_day (a weekday that must
// have no meetings), limit and offset.
func (h *ScheduleHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var f repository.ScheduleFilter
	f.CampusPattern = c.QueryParam("campus_pattern")
	f.FreeDay = c.QueryParam("free_day")

	var err error
	if f.MinCredits, err = optionalInt(c.QueryParam("min_credits")); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_credits"})
	}
	if f.MaxCredits, err = optionalInt(c.QueryParam("max_credits")); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_credits"})
	}
	if v := c.QueryParam("limit"); v != "" {
		if f.Limit, err = strconv.Atoi(v); err != nil || f.Limit < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if f.Offset, err = strconv.Atoi(v); err != nil || f.Offset < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid offset"})
		}
	}

	schedules, err := h.Repo.List(ctx, f)
	if err != nil {
		if errors.Is(err, repository.ErrBadFilter) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid free_day"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	out := make([]ScheduleSummary, 0, len(schedules))
	for i := range schedules {
		out = append(out, toSummary(&schedules[i]))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Get returns one schedule with its sections and their meetings.
func (h *ScheduleHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	s, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toDetail(s))
}

func optionalInt(v string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
