package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ositola/schedule-planner/internal/engine"
	"github.com/ositola/schedule-planner/internal/model"
)

var testCreatedAt = time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

func ratingPtr(v float64) *float64 { return &v }

// TestSummarize_CreditsAndCount sums credits across sections.
func TestSummarize_CreditsAndCount(t *testing.T) {
	c := engine.NewChecker("Zoom")
	combo := []model.Section{
		section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale"),
		section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Annandale"),
		section(t, "PHY", 241, "001", 3, model.Wed, "09:00", "09:50", "Annandale"),
	}
	s, err := c.Summarize(combo, testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, 10, s.TotalCredits)
	assert.Equal(t, 3, s.NumSections)
	assert.Len(t, s.Sections, 3)
	assert.Equal(t, testCreatedAt, s.CreatedAt)
}

// TestSummarize_NullAwareRating: unrated sections do not participate in
// the mean, and an all-unrated combination keeps a nil average.
func TestSummarize_NullAwareRating(t *testing.T) {
	c := engine.NewChecker("Zoom")

	rated := section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale")
	rated.Rating = ratingPtr(4.5)
	unrated1 := section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Annandale")
	unrated2 := section(t, "PHY", 241, "001", 3, model.Wed, "09:00", "09:50", "Annandale")

	s, err := c.Summarize([]model.Section{rated, unrated1, unrated2}, testCreatedAt)
	require.NoError(t, err)
	require.NotNil(t, s.AvgRating)
	assert.Equal(t, 4.5, *s.AvgRating, "mean over rated sections only, not divided by three")

	s, err = c.Summarize([]model.Section{unrated1, unrated2}, testCreatedAt)
	require.NoError(t, err)
	assert.Nil(t, s.AvgRating, "no rated sections means no average, not zero")
}

// TestSummarize_RatingRounded: the mean is rounded to two decimals.
func TestSummarize_RatingRounded(t *testing.T) {
	c := engine.NewChecker("Zoom")
	a := section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale")
	a.Rating = ratingPtr(4.0)
	b := section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Annandale")
	b.Rating = ratingPtr(3.5)
	x := section(t, "PHY", 241, "001", 3, model.Wed, "09:00", "09:50", "Annandale")
	x.Rating = ratingPtr(3.0)

	s, err := c.Summarize([]model.Section{a, b, x}, testCreatedAt)
	require.NoError(t, err)
	require.NotNil(t, s.AvgRating)
	assert.Equal(t, 3.5, *s.AvgRating)

	b.Rating = ratingPtr(3.0)
	s, err = c.Summarize([]model.Section{a, b, x}, testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, 3.33, *s.AvgRating)
}

// TestSummarize_DayFlagsAndSpan checks the per-day footprint and the
// earliest/latest times over all meetings.
func TestSummarize_DayFlagsAndSpan(t *testing.T) {
	c := engine.NewChecker("Zoom")
	twoMeetings := model.Section{
		Subject: "CSC", Number: 208, SectionCode: "001", Credits: 3,
		Meetings: []model.Meeting{
			meeting(t, model.Mon, "08:00", "08:50", "Annandale"),
			meeting(t, model.Thu, "16:00", "17:15", "Annandale"),
		},
	}
	sat := section(t, "MTH", 265, "001", 4, model.Sat, "10:00", "12:45", "Annandale")

	s, err := c.Summarize([]model.Section{twoMeetings, sat}, testCreatedAt)
	require.NoError(t, err)
	assert.True(t, s.MeetsMon)
	assert.True(t, s.MeetsThu)
	assert.True(t, s.MeetsSat)
	assert.False(t, s.MeetsTue)
	assert.False(t, s.MeetsWed)
	assert.False(t, s.MeetsFri)
	assert.Equal(t, "08:00:00", s.EarliestStart.String())
	assert.Equal(t, "17:15:00", s.LatestEnd.String())
	assert.True(t, s.EarliestStart <= s.LatestEnd)
}

// TestSummarize_CampusPattern covers the three classifications.
func TestSummarize_CampusPattern(t *testing.T) {
	c := engine.NewChecker("Zoom")

	allZoom := []model.Section{
		section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Zoom"),
		section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Zoom"),
	}
	s, err := c.Summarize(allZoom, testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, model.PatternOnlineOnly, s.CampusPattern)

	oneCampus := []model.Section{
		section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale"),
		section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Zoom"),
	}
	s, err = c.Summarize(oneCampus, testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, "Annandale-only", s.CampusPattern, "remote meetings do not break a single-campus pattern")

	spread := []model.Section{
		section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale"),
		section(t, "MTH", 265, "001", 4, model.Tue, "09:00", "09:50", "Alexandria"),
	}
	s, err = c.Summarize(spread, testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, model.PatternMixed, s.CampusPattern)
}

// TestSummarize_Degenerate: a combination with no meetings at all is a
// data contract violation, not a zero-value summary.
func TestSummarize_Degenerate(t *testing.T) {
	c := engine.NewChecker("Zoom")
	empty := []model.Section{{Subject: "CSC", Number: 208, SectionCode: "001", Credits: 3}}

	_, err := c.Summarize(empty, testCreatedAt)
	assert.ErrorIs(t, err, engine.ErrDegenerateSchedule)
}
