package repository

import (
	"context"
	"database/sql"

	"github.com/ositola/schedule-planner/internal/catalog"
)

// CatalogRepo reads the course_meetings table, the meeting-level catalog
// that feeds the pool loader.  One row per (section, meeting) pair.
type CatalogRepo struct {
	db *sql.DB
}

// NewCatalogRepo constructs a CatalogRepo with the given DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// FetchRows returns every catalog row ordered by section identity and row
// id, so section grouping and meeting order are stable across runs.  TIME
// columns are read as strings and parsed by the loader.
func (r *CatalogRepo) FetchRows(ctx context.Context) ([]catalog.Row, error) {
	const q = `SELECT subject_code, course_number, section_code, course_title, credits,
                      instructor_name, instructor_rating,
                      day_of_week, start_time, end_time, campus
               FROM course_meetings
               ORDER BY subject_code, course_number, section_code, id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []catalog.Row
	for rows.Next() {
		var row catalog.Row
		var instructor sql.NullString
		var rating sql.NullFloat64
		if err := rows.Scan(
			&row.Subject, &row.Number, &row.SectionCode, &row.Title, &row.Credits,
			&instructor, &rating,
			&row.Day, &row.Start, &row.End, &row.Location,
		); err != nil {
			return nil, err
		}
		row.Instructor = instructor.String
		if rating.Valid {
			v := rating.Float64
			row.Rating = &v
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
