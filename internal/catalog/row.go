// Package catalog turns flat meeting-level catalog rows into per-course
// pools of sections.  Rows come either from the course_meetings table or
// from a CSV extract with the same columns; both paths share the Row type
// and the grouping logic in BuildPools.
package catalog

// Row is one (section, meeting) record of the catalog: section and
// instructor metadata repeated on every meeting row.  The csv tags match
// the header of catalog extracts.
type Row struct {
	Subject     string   `csv:"subject_code"`
	Number      int      `csv:"course_number"`
	SectionCode string   `csv:"section_code"`
	Title       string   `csv:"course_title"`
	Credits     int      `csv:"credits"`
	Instructor  string   `csv:"instructor_name"`
	Rating      *float64 `csv:"instructor_rating"`
	Day         string   `csv:"day_of_week"`
	Start       string   `csv:"start_time"`
	End         string   `csv:"end_time"`
	Location    string   `csv:"campus"`
}
