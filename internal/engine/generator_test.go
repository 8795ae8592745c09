package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ositola/schedule-planner/internal/catalog"
	"github.com/ositola/schedule-planner/internal/engine"
	"github.com/ositola/schedule-planner/internal/model"
)

// section builds a one-meeting section for generator tests.
func section(t *testing.T, subject string, number int, code string, credits int,
	day model.Weekday, start, end, loc string) model.Section {
	t.Helper()
	return model.Section{
		Subject: subject, Number: number, SectionCode: code,
		Title: subject + " course", Credits: credits,
		Meetings: []model.Meeting{meeting(t, day, start, end, loc)},
	}
}

// bruteForce re-implements enumeration by materializing the full product
// and filtering it, as an oracle for the generator.
func bruteForce(pools catalog.Pools, targets []model.CourseKey, c engine.Checker) [][]model.Section {
	axes := make([][]model.Section, len(targets))
	for i, key := range targets {
		axes[i] = pools[key]
	}
	product := [][]model.Section{{}}
	for _, axis := range axes {
		var next [][]model.Section
		for _, prefix := range product {
			for _, sec := range axis {
				combo := append(append([]model.Section{}, prefix...), sec)
				next = append(next, combo)
			}
		}
		product = next
	}
	var accepted [][]model.Section
	for _, combo := range product {
		if c.Valid(combo) {
			accepted = append(accepted, combo)
		}
	}
	return accepted
}

func testPools(t *testing.T) (catalog.Pools, []model.CourseKey) {
	t.Helper()
	csc := model.CourseKey{Subject: "CSC", Number: 208}
	mth := model.CourseKey{Subject: "MTH", Number: 265}
	phy := model.CourseKey{Subject: "PHY", Number: 241}
	pools := catalog.Pools{
		csc: {
			section(t, "CSC", 208, "001", 3, model.Mon, "09:00", "09:50", "Annandale"),
			section(t, "CSC", 208, "002", 3, model.Tue, "09:00", "09:50", "Alexandria"),
			section(t, "CSC", 208, "003", 3, model.Wed, "18:00", "19:30", "Zoom"),
		},
		mth: {
			section(t, "MTH", 265, "001", 4, model.Mon, "09:30", "10:30", "Annandale"),
			section(t, "MTH", 265, "002", 4, model.Thu, "11:00", "12:15", "Annandale"),
		},
		phy: {
			section(t, "PHY", 241, "001", 4, model.Fri, "08:00", "09:40", "Alexandria"),
			section(t, "PHY", 241, "002", 4, model.Tue, "09:30", "11:10", "Alexandria"),
		},
	}
	return pools, []model.CourseKey{csc, mth, phy}
}

// TestGenerate_MatchesBruteForce: the generator's accepted set equals the
// filtered full product, in count and in order.
func TestGenerate_MatchesBruteForce(t *testing.T) {
	pools, targets := testPools(t)
	c := engine.NewChecker("Zoom")

	got, err := engine.Generate(pools, targets, c)
	require.NoError(t, err)

	want := bruteForce(pools, targets, c)
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, len(got), 3*2*2, "never more results than the pool product")
}

// TestGenerate_Deterministic: identical input yields the identical set in
// the identical enumeration order.
func TestGenerate_Deterministic(t *testing.T) {
	pools, targets := testPools(t)
	c := engine.NewChecker("Zoom")

	first, err := engine.Generate(pools, targets, c)
	require.NoError(t, err)
	second, err := engine.Generate(pools, targets, c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestGenerate_EnumerationOrder: results come out in lexicographic
// pool-index order with the first target as the outermost axis.
func TestGenerate_EnumerationOrder(t *testing.T) {
	a := model.CourseKey{Subject: "AAA", Number: 1}
	b := model.CourseKey{Subject: "BBB", Number: 2}
	pools := catalog.Pools{
		a: {
			section(t, "AAA", 1, "A1", 3, model.Mon, "09:00", "09:50", "Annandale"),
			section(t, "AAA", 1, "A2", 3, model.Tue, "09:00", "09:50", "Annandale"),
		},
		b: {
			section(t, "BBB", 2, "B1", 3, model.Wed, "09:00", "09:50", "Annandale"),
			section(t, "BBB", 2, "B2", 3, model.Thu, "09:00", "09:50", "Annandale"),
		},
	}
	got, err := engine.Generate(pools, []model.CourseKey{a, b}, engine.NewChecker(""))
	require.NoError(t, err)
	require.Len(t, got, 4)

	var order []string
	for _, combo := range got {
		order = append(order, combo[0].SectionCode+combo[1].SectionCode)
	}
	assert.Equal(t, []string{"A1B1", "A1B2", "A2B1", "A2B2"}, order)
}

// TestGenerate_UnknownCourse: a target with no pool aborts the run.
func TestGenerate_UnknownCourse(t *testing.T) {
	pools, targets := testPools(t)
	missing := append(targets, model.CourseKey{Subject: "BIO", Number: 101})

	_, err := engine.Generate(pools, missing, engine.NewChecker("Zoom"))
	assert.ErrorIs(t, err, engine.ErrUnknownCourse)

	// An existing key with an empty pool behaves the same.
	pools[model.CourseKey{Subject: "BIO", Number: 101}] = nil
	_, err = engine.Generate(pools, missing, engine.NewChecker("Zoom"))
	assert.ErrorIs(t, err, engine.ErrUnknownCourse)
}

// TestGenerateParallel_MatchesSerial: sharded enumeration returns the
// identical ordered result set as the serial path.
func TestGenerateParallel_MatchesSerial(t *testing.T) {
	pools, targets := testPools(t)
	c := engine.NewChecker("Zoom")

	serial, err := engine.Generate(pools, targets, c)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 8} {
		parallel, err := engine.GenerateParallel(context.Background(), pools, targets, c, workers)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, serial, parallel, "workers=%d", workers)
	}
}

// TestGenerate_Scenario walks the documented two-course example: a Monday
// overlap rejects one candidate, the cross-day pair survives and spans two
// campuses.
func TestGenerate_Scenario(t *testing.T) {
	csc := model.CourseKey{Subject: "CSC", Number: 101}
	mth := model.CourseKey{Subject: "MTH", Number: 120}
	secA := section(t, "CSC", 101, "A", 3, model.Mon, "09:00", "10:00", "Annandale")
	secB := section(t, "CSC", 101, "B", 3, model.Tue, "09:00", "10:00", "Alexandria")
	secC := section(t, "MTH", 120, "C", 4, model.Mon, "09:30", "10:30", "Annandale")
	pools := catalog.Pools{csc: {secA, secB}, mth: {secC}}

	c := engine.NewChecker("Zoom")
	got, err := engine.Generate(pools, []model.CourseKey{csc, mth}, c)
	require.NoError(t, err)
	require.Len(t, got, 1, "only (B, C) survives")
	assert.Equal(t, "B", got[0][0].SectionCode)
	assert.Equal(t, "C", got[0][1].SectionCode)

	s, err := c.Summarize(got[0], testCreatedAt)
	require.NoError(t, err)
	assert.Equal(t, 7, s.TotalCredits)
	assert.Equal(t, model.PatternMixed, s.CampusPattern,
		"two physical campuses on different days")
}
