// Command export writes the stored result set to a CSV file and can drop
// it on an SFTP server for downstream consumers.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ositola/schedule-planner/internal/database"
	"github.com/ositola/schedule-planner/internal/export"
	"github.com/ositola/schedule-planner/internal/repository"
	"github.com/ositola/schedule-planner/internal/sftpclient"
)

func main() {
	out := flag.String("o", "schedules.csv", "output CSV path")
	upload := flag.Bool("upload", false, "upload the CSV via SFTP after writing (SFTP_* env vars)")
	flag.Parse()

	_ = godotenv.Load()

	// Only the DB settings are needed here; skip the full config loader so
	// export works without the API/auth variables set.
	db, err := database.Open(
		mustEnv("DB_USER"), os.Getenv("DB_PASS"),
		mustEnv("DB_HOST"), mustEnv("DB_PORT"), mustEnv("DB_NAME"),
	)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	schedules, err := repository.NewScheduleRepo(db).List(ctx, repository.ScheduleFilter{})
	if err != nil {
		log.Fatalf("read schedules: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("create %s: %v", *out, err)
	}
	if err := export.WriteSchedulesCSV(f, schedules); err != nil {
		f.Close()
		log.Fatalf("write csv: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close %s: %v", *out, err)
	}
	log.Printf("wrote %d schedules to %s", len(schedules), *out)

	if !*upload {
		return
	}
	port, _ := strconv.Atoi(os.Getenv("SFTP_PORT"))
	cfg := sftpclient.Config{
		Host:      os.Getenv("SFTP_HOST"),
		Port:      port,
		User:      os.Getenv("SFTP_USER"),
		Pass:      os.Getenv("SFTP_PASS"),
		RemoteDir: os.Getenv("SFTP_REMOTE_DIR"),
	}
	uploadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	if err := sftpclient.UploadFile(uploadCtx, cfg, *out, filepath.Base(*out)); err != nil {
		log.Fatalf("upload: %v", err)
	}
	log.Printf("uploaded %s", filepath.Base(*out))
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
