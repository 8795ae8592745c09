package model

import "fmt"

// CourseKey identifies a course independent of its sections.  The list of
// keys to schedule is caller configuration, never derived from catalog data.
type CourseKey struct {
	Subject string // subject_code, e.g. "CSC"
	Number  int    // course_number, e.g. 208
}

// String renders the key in the "CSC 208" form used in configuration and
// log output.
func (k CourseKey) String() string {
	return fmt.Sprintf("%s %d", k.Subject, k.Number)
}

// Section is one offered instance of a course with its own section code,
// instructor and meeting times.  Identity is (Subject, Number, SectionCode).
// Sections are immutable after loading; Rating is nil when the instructor
// has no rating, which is distinct from a rating of zero.
type Section struct {
	Subject     string    // subject_code
	Number      int       // course_number
	SectionCode string    // section_code
	Title       string    // course_title
	Credits     int       // credits
	Instructor  string    // instructor_name
	Rating      *float64  // instructor_rating (nullable)
	Meetings    []Meeting // one or more weekly meetings, in catalog row order
}

// Key returns the course key the section belongs to.
func (s Section) Key() CourseKey {
	return CourseKey{Subject: s.Subject, Number: s.Number}
}
