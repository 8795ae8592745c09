// Command generate runs one batch computation: load the section pools,
// enumerate every conflict-free combination of the target courses,
// summarize the accepted ones and replace the stored result set.  Any
// failure aborts the run before the write transaction commits, leaving the
// previous results untouched.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/ositola/schedule-planner/internal/catalog"
	"github.com/ositola/schedule-planner/internal/config"
	"github.com/ositola/schedule-planner/internal/database"
	"github.com/ositola/schedule-planner/internal/engine"
	"github.com/ositola/schedule-planner/internal/model"
	"github.com/ositola/schedule-planner/internal/queue"
	"github.com/ositola/schedule-planner/internal/repository"
	queue_publisher "github.com/ositola/schedule-planner/internal/service"
)

func main() {
	csvPath := flag.String("csv", "", "load catalog rows from this CSV instead of the database")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	if len(cfg.TargetCourses) == 0 {
		log.Fatal("TARGET_COURSES must list at least one course, e.g. \"CSC 208,MTH 265\"")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	started := time.Now()

	var rows []catalog.Row
	if *csvPath != "" {
		rows, err = catalog.LoadRowsCSV(*csvPath)
	} else {
		rows, err = repository.NewCatalogRepo(db).FetchRows(ctx)
	}
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	pools, err := catalog.BuildPools(rows)
	if err != nil {
		log.Fatalf("build pools: %v", err)
	}
	poolProduct := 1
	for _, key := range cfg.TargetCourses {
		poolProduct *= len(pools[key]) // zero pools fail in Generate below
	}

	checker := engine.NewChecker(cfg.RemoteLocation)
	accepted, err := engine.GenerateParallel(ctx, pools, cfg.TargetCourses, checker, cfg.Workers)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	now := time.Now().UTC()
	schedules := make([]model.Schedule, 0, len(accepted))
	for _, combo := range accepted {
		s, err := checker.Summarize(combo, now)
		if err != nil {
			log.Fatalf("summarize: %v", err)
		}
		schedules = append(schedules, s)
	}

	if err := repository.NewScheduleRepo(db).ReplaceAll(ctx, schedules); err != nil {
		log.Fatalf("persist: %v", err)
	}
	log.Printf("generated %d valid schedules from %d combinations", len(schedules), poolProduct)

	targets := make([]string, 0, len(cfg.TargetCourses))
	for _, key := range cfg.TargetCourses {
		targets = append(targets, key.String())
	}
	// Broker outage must not fail a run that already committed.
	_ = queue_publisher.PublishRunCompleted(ctx, queue.RunCompletedEvent{
		TargetCourses:     targets,
		CandidatesChecked: poolProduct,
		SchedulesWritten:  len(schedules),
		ElapsedMillis:     time.Since(started).Milliseconds(),
		CompletedAt:       now.Format(time.RFC3339),
	})
}
