package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ositola/schedule-planner/internal/catalog"
	"github.com/ositola/schedule-planner/internal/model"
)

// ErrUnknownCourse is returned when a target course key has no candidate
// sections in the pool mapping.  The run aborts rather than silently
// skipping the course.
var ErrUnknownCourse = errors.New("unknown course")

// Generate enumerates every combination of one section per target course
// and returns the conflict-free ones.  Enumeration is the full Cartesian
// product over the ordered pools, one axis per target in the given order;
// results come out in lexicographic pool-index order, so re-running on the
// same input yields the identical set in the identical order.
func Generate(pools catalog.Pools, targets []model.CourseKey, c Checker) ([][]model.Section, error) {
	axes, err := targetAxes(pools, targets)
	if err != nil {
		return nil, err
	}

	var accepted [][]model.Section
	combo := make([]model.Section, len(axes))
	enumerate(axes, 0, combo, c, &accepted)
	return accepted, nil
}

// GenerateParallel is Generate with the outermost pool's index range
// sharded across workers.  Each worker enumerates its sub-products
// independently; shard results are stitched back together in outer-index
// order, so the output is identical to the serial enumeration.  workers of
// one or less falls back to Generate.
func GenerateParallel(ctx context.Context, pools catalog.Pools, targets []model.CourseKey, c Checker, workers int) ([][]model.Section, error) {
	if workers <= 1 || len(targets) == 0 {
		return Generate(pools, targets, c)
	}
	axes, err := targetAxes(pools, targets)
	if err != nil {
		return nil, err
	}
	if workers > len(axes[0]) {
		workers = len(axes[0])
	}

	shards := make([][][]model.Section, len(axes[0]))
	jobs := make(chan int, len(axes[0]))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for outer := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				var accepted [][]model.Section
				combo := make([]model.Section, len(axes))
				combo[0] = axes[0][outer]
				enumerate(axes, 1, combo, c, &accepted)
				shards[outer] = accepted
			}
		}()
	}
	for i := range axes[0] {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var accepted [][]model.Section
	for _, shard := range shards {
		accepted = append(accepted, shard...)
	}
	return accepted, nil
}

// targetAxes resolves the ordered pools for the target list, rejecting
// targets with no candidate sections.
func targetAxes(pools catalog.Pools, targets []model.CourseKey) ([][]model.Section, error) {
	axes := make([][]model.Section, len(targets))
	for i, key := range targets {
		pool := pools[key]
		if len(pool) == 0 {
			return nil, fmt.Errorf("%w: %s has no sections", ErrUnknownCourse, key)
		}
		axes[i] = pool
	}
	return axes, nil
}

// enumerate walks the product of axes[axis:] with the prefix combo[:axis]
// already fixed, appending each conflict-free full combination to accepted.
func enumerate(axes [][]model.Section, axis int, combo []model.Section, c Checker, accepted *[][]model.Section) {
	if axis == len(axes) {
		if c.Valid(combo) {
			result := make([]model.Section, len(combo))
			copy(result, combo)
			*accepted = append(*accepted, result)
		}
		return
	}
	for _, sec := range axes[axis] {
		combo[axis] = sec
		enumerate(axes, axis+1, combo, c, accepted)
	}
}
