package catalog

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// LoadRowsCSV reads meeting-level rows from a CSV extract.  The file must
// carry the same column headers as the course_meetings table.  Empty
// instructor_rating cells become nil ratings.
func LoadRowsCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog csv: %w", err)
	}
	defer f.Close()

	var rows []Row
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse catalog csv %s: %w", path, err)
	}
	return rows, nil
}
