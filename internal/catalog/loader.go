package catalog

import (
	"errors"
	"fmt"

	"github.com/ositola/schedule-planner/internal/model"
)

// ErrMalformedRow is returned when a catalog row is missing a required
// field or carries an unrecognised day.  Time strings that match neither
// accepted format surface as model.ErrUnparsableTime instead.
var ErrMalformedRow = errors.New("malformed catalog row")

// Pools maps each course key to its candidate sections.  Sections appear in
// first-encounter order of their rows; the meeting list of each section
// preserves row order.
type Pools map[model.CourseKey][]model.Section

// sectionKey is the grouping identity of a section across meeting rows.
type sectionKey struct {
	subject string
	number  int
	code    string
}

// BuildPools groups meeting-level rows into sections keyed by course.
// Section and instructor metadata are taken from the first row of each
// group; the caller guarantees they are identical across the group, which
// is not re-verified here.  A nil rating stays nil.
func BuildPools(rows []Row) (Pools, error) {
	pools := Pools{}
	var order []sectionKey // section groups in first-encounter order
	sections := map[sectionKey]*model.Section{}

	for i, row := range rows {
		if row.Subject == "" || row.SectionCode == "" || row.Day == "" ||
			row.Start == "" || row.End == "" || row.Location == "" {
			return nil, fmt.Errorf("%w: row %d is missing a required field", ErrMalformedRow, i)
		}
		if row.Credits < 0 {
			return nil, fmt.Errorf("%w: row %d has negative credits", ErrMalformedRow, i)
		}

		day, err := model.ParseWeekday(row.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i, err)
		}
		start, err := model.ParseClock(row.Start)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		end, err := model.ParseClock(row.End)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		key := sectionKey{subject: row.Subject, number: row.Number, code: row.SectionCode}
		sec, seen := sections[key]
		if !seen {
			sec = &model.Section{
				Subject:     row.Subject,
				Number:      row.Number,
				SectionCode: row.SectionCode,
				Title:       row.Title,
				Credits:     row.Credits,
				Instructor:  row.Instructor,
				Rating:      row.Rating,
			}
			sections[key] = sec
			order = append(order, key)
		}
		sec.Meetings = append(sec.Meetings, model.Meeting{
			Day:      day,
			Start:    start,
			End:      end,
			Location: row.Location,
		})
	}

	for _, key := range order {
		sec := sections[key]
		course := sec.Key()
		pools[course] = append(pools[course], *sec)
	}
	return pools, nil
}
