package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ositola/schedule-planner/internal/engine"
	"github.com/ositola/schedule-planner/internal/model"
)

func meeting(t *testing.T, day model.Weekday, start, end, loc string) model.Meeting {
	t.Helper()
	s, err := model.ParseClock(start)
	assert.NoError(t, err)
	e, err := model.ParseClock(end)
	assert.NoError(t, err)
	return model.Meeting{Day: day, Start: s, End: e, Location: loc}
}

// TestTimeConflict_DifferentDays: meetings on different days never
// conflict, whatever their times or locations.
func TestTimeConflict_DifferentDays(t *testing.T) {
	c := engine.NewChecker("")
	a := meeting(t, model.Mon, "09:00", "10:00", "Annandale")
	b := meeting(t, model.Tue, "09:00", "10:00", "Alexandria")

	assert.False(t, c.TimeConflict(a, b))
	assert.False(t, c.CampusSwitch(a, b))
}

// TestTimeConflict_BoundaryTouch: a meeting ending exactly when another
// starts is not a conflict; a genuine overlap is.
func TestTimeConflict_BoundaryTouch(t *testing.T) {
	c := engine.NewChecker("")
	a := meeting(t, model.Mon, "09:00", "09:50", "Annandale")
	b := meeting(t, model.Mon, "09:50", "10:40", "Annandale")
	assert.False(t, c.TimeConflict(a, b))
	assert.False(t, c.TimeConflict(b, a))

	x := meeting(t, model.Mon, "09:00", "10:00", "Annandale")
	y := meeting(t, model.Mon, "09:30", "10:30", "Annandale")
	assert.True(t, c.TimeConflict(x, y))
	assert.True(t, c.TimeConflict(y, x), "predicate must be symmetric")

	// Containment counts too.
	outer := meeting(t, model.Mon, "08:00", "12:00", "Annandale")
	inner := meeting(t, model.Mon, "09:00", "09:30", "Annandale")
	assert.True(t, c.TimeConflict(outer, inner))
}

// TestCampusSwitch covers the commute rule: two physical campuses on the
// same day conflict; the remote sentinel never does.
func TestCampusSwitch(t *testing.T) {
	c := engine.NewChecker("Zoom")

	annandale := meeting(t, model.Tue, "09:00", "09:50", "Annandale")
	alexandria := meeting(t, model.Tue, "13:00", "13:50", "Alexandria")
	zoom := meeting(t, model.Tue, "11:00", "11:50", "Zoom")
	zoom2 := meeting(t, model.Tue, "15:00", "15:50", "Zoom")

	assert.True(t, c.CampusSwitch(annandale, alexandria))
	assert.True(t, c.CampusSwitch(alexandria, annandale))
	assert.False(t, c.CampusSwitch(annandale, zoom))
	assert.False(t, c.CampusSwitch(zoom, zoom2))

	// Same campus twice is a commute of zero.
	annandale2 := meeting(t, model.Tue, "14:00", "14:50", "Annandale")
	assert.False(t, c.CampusSwitch(annandale, annandale2))
}

// TestChecker_CustomRemote: the sentinel is configurable; with a custom
// value, "Zoom" counts as a physical campus.
func TestChecker_CustomRemote(t *testing.T) {
	c := engine.NewChecker("Online")
	zoom := meeting(t, model.Wed, "09:00", "09:50", "Zoom")
	online := meeting(t, model.Wed, "10:00", "10:50", "Online")
	annandale := meeting(t, model.Wed, "13:00", "13:50", "Annandale")

	assert.False(t, c.CampusSwitch(online, annandale))
	assert.True(t, c.CampusSwitch(zoom, annandale))
}

// TestValid_PoolsMeetingsAcrossSections: validity is checked over the
// union of all meetings of all sections in the combination.
func TestValid_PoolsMeetingsAcrossSections(t *testing.T) {
	c := engine.NewChecker("")

	secA := model.Section{
		Subject: "CSC", Number: 101, SectionCode: "001",
		Meetings: []model.Meeting{
			meeting(t, model.Mon, "09:00", "09:50", "Annandale"),
			meeting(t, model.Wed, "09:00", "09:50", "Annandale"),
		},
	}
	secB := model.Section{
		Subject: "MTH", Number: 120, SectionCode: "002",
		Meetings: []model.Meeting{
			meeting(t, model.Wed, "09:30", "10:20", "Annandale"),
		},
	}
	secC := model.Section{
		Subject: "MTH", Number: 120, SectionCode: "003",
		Meetings: []model.Meeting{
			meeting(t, model.Tue, "09:30", "10:20", "Annandale"),
		},
	}

	assert.False(t, c.Valid([]model.Section{secA, secB}), "Wed meetings overlap")
	assert.True(t, c.Valid([]model.Section{secA, secC}))
	assert.True(t, c.Valid(nil), "empty combination is trivially conflict-free")
}
