package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ositola/schedule-planner/internal/model"
)

// TestParseClock_TwoFormats verifies that the parser selects the format by
// string length: "HH:MM" versus "HH:MM:SS".
func TestParseClock_TwoFormats(t *testing.T) {
	short, err := model.ParseClock("09:30")
	assert.NoError(t, err)
	assert.Equal(t, model.ClockTime(9*3600+30*60), short)

	long, err := model.ParseClock("09:30:15")
	assert.NoError(t, err)
	assert.Equal(t, model.ClockTime(9*3600+30*60+15), long)

	// Same instant in both formats parses equal.
	a, _ := model.ParseClock("14:00")
	b, _ := model.ParseClock("14:00:00")
	assert.Equal(t, a, b)
}

// TestParseClock_Rejects ensures strings outside both accepted patterns
// surface ErrUnparsableTime.
func TestParseClock_Rejects(t *testing.T) {
	for _, bad := range []string{"", "9:3", "25:00", "09-30", "09:30:99", "noon"} {
		_, err := model.ParseClock(bad)
		assert.ErrorIs(t, err, model.ErrUnparsableTime, "input %q", bad)
	}
}

// TestClockTime_String renders the MySQL TIME form.
func TestClockTime_String(t *testing.T) {
	v, err := model.ParseClock("08:05:09")
	assert.NoError(t, err)
	assert.Equal(t, "08:05:09", v.String())

	morning, _ := model.ParseClock("09:00")
	assert.Equal(t, "09:00:00", morning.String())
}

// TestClockTime_Ordering confirms the natural ordering used by the
// conflict checker.
func TestClockTime_Ordering(t *testing.T) {
	early, _ := model.ParseClock("09:00")
	late, _ := model.ParseClock("09:50")
	assert.True(t, early < late)
}

func TestParseWeekday(t *testing.T) {
	d, err := model.ParseWeekday("Wed")
	assert.NoError(t, err)
	assert.Equal(t, model.Wed, d)
	assert.Equal(t, "Wed", d.String())

	_, err = model.ParseWeekday("Wednesday")
	assert.ErrorIs(t, err, model.ErrUnknownWeekday)
}
