package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ositola/schedule-planner/internal/model"
)

// ScheduleRepo persists generated schedules and serves the query API.
// Writes replace the whole result set of the previous run inside a single
// transaction, so readers never observe a partially cleared or partially
// filled set.
type ScheduleRepo struct {
	db *sql.DB
}

// NewScheduleRepo constructs a ScheduleRepo with the given DB handle.
func NewScheduleRepo(db *sql.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// DB exposes the underlying sql.DB for callers that need to compose
// transactions across repositories.
func (r *ScheduleRepo) DB() *sql.DB {
	return r.db
}

// ReplaceAll atomically swaps the stored result set for the given one.
// Favorites and section rows referencing the old schedules are cleared in
// the same transaction.  On success each schedule's ID field is populated
// with its assigned identifier; on failure the previous results remain
// intact.
func (r *ScheduleRepo) ReplaceAll(ctx context.Context, schedules []model.Schedule) (err error) {
	var tx *sql.Tx
	tx, err = r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Children first to satisfy foreign keys.
	if _, err = tx.ExecContext(ctx, `DELETE FROM favorites`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM schedule_sections`); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return err
	}

	const insSchedule = `INSERT INTO schedules
        (total_credits, total_instructor_score, num_sections,
         meets_mon, meets_tue, meets_wed, meets_thu, meets_fri, meets_sat,
         earliest_start, latest_end, campus_pattern, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	const insSection = `INSERT INTO schedule_sections
        (schedule_id, subject_code, course_number, section_code, course_title, credits)
        VALUES (?, ?, ?, ?, ?, ?)`

	for i := range schedules {
		s := &schedules[i]
		var rating sql.NullFloat64
		if s.AvgRating != nil {
			rating = sql.NullFloat64{Float64: *s.AvgRating, Valid: true}
		}
		var res sql.Result
		res, err = tx.ExecContext(ctx, insSchedule,
			s.TotalCredits, rating, s.NumSections,
			s.MeetsMon, s.MeetsTue, s.MeetsWed, s.MeetsThu, s.MeetsFri, s.MeetsSat,
			s.EarliestStart.String(), s.LatestEnd.String(), s.CampusPattern, s.CreatedAt.UTC(),
		)
		if err != nil {
			return err
		}
		var id int64
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		s.ID = uint64(id)
		for _, sec := range s.Sections {
			if _, err = tx.ExecContext(ctx, insSection,
				s.ID, sec.Subject, sec.Number, sec.SectionCode, sec.Title, sec.Credits,
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// ScheduleFilter narrows List results.  Zero values mean "no constraint".
// FreeDay names a weekday (Mon..Sat) that must have no meetings.
type ScheduleFilter struct {
	CampusPattern string
	MinCredits    *int
	MaxCredits    *int
	FreeDay       string
	Limit         int
	Offset        int
}

// meetsColumns whitelists the day-flag columns addressable via FreeDay.
var meetsColumns = map[string]string{
	"Mon": "meets_mon",
	"Tue": "meets_tue",
	"Wed": "meets_wed",
	"Thu": "meets_thu",
	"Fri": "meets_fri",
	"Sat": "meets_sat",
}

// ErrBadFilter is returned when a filter value is not usable, e.g. an
// unknown FreeDay name.
var ErrBadFilter = errors.New("bad schedule filter")

// List returns schedule summaries matching the filter, in id order (which
// is the enumeration order of the run that produced them).  Sections are
// not populated; use GetByID for the full record.
func (r *ScheduleRepo) List(ctx context.Context, f ScheduleFilter) ([]model.Schedule, error) {
	where := []string{}
	args := []any{}

	if f.CampusPattern != "" {
		where = append(where, "campus_pattern = ?")
		args = append(args, f.CampusPattern)
	}
	if f.MinCredits != nil {
		where = append(where, "total_credits >= ?")
		args = append(args, *f.MinCredits)
	}
	if f.MaxCredits != nil {
		where = append(where, "total_credits <= ?")
		args = append(args, *f.MaxCredits)
	}
	if f.FreeDay != "" {
		col, ok := meetsColumns[f.FreeDay]
		if !ok {
			return nil, ErrBadFilter
		}
		where = append(where, col+" = FALSE")
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	q := `SELECT id, total_credits, total_instructor_score, num_sections,
                 meets_mon, meets_tue, meets_wed, meets_thu, meets_fri, meets_sat,
                 earliest_start, latest_end, campus_pattern, created_at
          FROM schedules
          WHERE ` + cond + `
          ORDER BY id ASC`
	if f.Limit > 0 {
		q += " LIMIT ? OFFSET ?"
		args = append(args, f.Limit, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns one schedule with its section rows and their catalog
// meetings.  ErrScheduleNotFound when the id matches nothing.
func (r *ScheduleRepo) GetByID(ctx context.Context, id uint64) (*model.Schedule, error) {
	const q = `SELECT id, total_credits, total_instructor_score, num_sections,
                      meets_mon, meets_tue, meets_wed, meets_thu, meets_fri, meets_sat,
                      earliest_start, latest_end, campus_pattern, created_at
               FROM schedules WHERE id = ?`
	row := r.db.QueryRowContext(ctx, q, id)
	s, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	// Section rows plus their meetings from the catalog.  The LEFT JOIN
	// keeps sections whose catalog rows were since removed.
	const qs = `SELECT ss.subject_code, ss.course_number, ss.section_code, ss.course_title, ss.credits,
                       cm.day_of_week, cm.start_time, cm.end_time, cm.campus
                FROM schedule_sections ss
                LEFT JOIN course_meetings cm
                  ON cm.subject_code = ss.subject_code
                 AND cm.course_number = ss.course_number
                 AND cm.section_code = ss.section_code
                WHERE ss.schedule_id = ?
                ORDER BY ss.id ASC, cm.id ASC`
	rows, err := r.db.QueryContext(ctx, qs, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCode := map[string]int{} // section identity -> index in s.Sections
	for rows.Next() {
		var sec model.ScheduleSection
		var day, start, end, campus sql.NullString
		if err := rows.Scan(
			&sec.Subject, &sec.Number, &sec.SectionCode, &sec.Title, &sec.Credits,
			&day, &start, &end, &campus,
		); err != nil {
			return nil, err
		}
		key := fmt.Sprintf("%s#%d#%s", sec.Subject, sec.Number, sec.SectionCode)
		idx, seen := byCode[key]
		if !seen {
			idx = len(s.Sections)
			byCode[key] = idx
			s.Sections = append(s.Sections, sec)
		}
		if day.Valid {
			m, err := parseMeeting(day.String, start.String, end.String, campus.String)
			if err != nil {
				return nil, err
			}
			s.Sections[idx].Meetings = append(s.Sections[idx].Meetings, m)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

// rowScanner lets scanSchedule work for both QueryRow and Query rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(sc rowScanner) (model.Schedule, error) {
	var s model.Schedule
	var rating sql.NullFloat64
	var earliest, latest string
	err := sc.Scan(
		&s.ID, &s.TotalCredits, &rating, &s.NumSections,
		&s.MeetsMon, &s.MeetsTue, &s.MeetsWed, &s.MeetsThu, &s.MeetsFri, &s.MeetsSat,
		&earliest, &latest, &s.CampusPattern, &s.CreatedAt,
	)
	if err != nil {
		return model.Schedule{}, err
	}
	if rating.Valid {
		v := rating.Float64
		s.AvgRating = &v
	}
	if s.EarliestStart, err = model.ParseClock(earliest); err != nil {
		return model.Schedule{}, err
	}
	if s.LatestEnd, err = model.ParseClock(latest); err != nil {
		return model.Schedule{}, err
	}
	return s, nil
}

func parseMeeting(day, start, end, campus string) (model.Meeting, error) {
	d, err := model.ParseWeekday(day)
	if err != nil {
		return model.Meeting{}, err
	}
	st, err := model.ParseClock(start)
	if err != nil {
		return model.Meeting{}, err
	}
	en, err := model.ParseClock(end)
	if err != nil {
		return model.Meeting{}, err
	}
	return model.Meeting{Day: d, Start: st, End: en, Location: campus}, nil
}
