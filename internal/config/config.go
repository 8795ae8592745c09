// Package config loads application configuration from environment
// variables.  Required variables are enforced by must(); missing values
// halt the process with a fatal log message.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ositola/schedule-planner/internal/model"
)

// Config holds all runtime configuration.  Each field corresponds to an
// environment variable.
type Config struct {
	Env            string // APP_ENV (dev/test/prod)
	Port           string // APP_PORT, HTTP port for the API server
	DBUser         string // DB_USER
	DBPass         string // DB_PASS (optional)
	DBHost         string // DB_HOST
	DBPort         string // DB_PORT
	DBName         string // DB_NAME
	JWTSecret      string // JWT_SECRET
	AccessTTLMin   int    // ACCESS_TOKEN_TTL_MIN
	RefreshTTLDays int    // REFRESH_TOKEN_TTL_DAYS
	BcryptCost     int    // BCRYPT_COST

	// Generator settings.
	TargetCourses  []model.CourseKey // TARGET_COURSES, e.g. "CSC 208,MTH 265,PHY 241"
	RemoteLocation string            // REMOTE_LOCATION, catalog sentinel for online meetings
	Workers        int               // GENERATE_WORKERS, 0 or 1 means serial enumeration
}

// Load reads configuration from the environment.  Auth variables are
// required because the API server always registers the auth routes; the
// generator settings have defaults.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
		BcryptCost:     mustInt("BCRYPT_COST"),
		TargetCourses:  optionalTargets("TARGET_COURSES"),
		RemoteLocation: getenv("REMOTE_LOCATION", model.RemoteLocation),
		Workers:        envInt("GENERATE_WORKERS", 0),
	}
}

// ParseTargets parses a comma-separated course key list such as
// "CSC 208, MTH 265".  Order is preserved; it fixes the enumeration axis
// order of the generator.
func ParseTargets(s string) ([]model.CourseKey, error) {
	var keys []model.CourseKey
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Fields(part)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad course key %q: want \"SUBJ NUM\"", part)
		}
		num, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad course number in %q: %v", part, err)
		}
		keys = append(keys, model.CourseKey{Subject: fields[0], Number: num})
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("empty target course list")
	}
	return keys, nil
}

// optionalTargets parses the target course list when set.  The API server
// runs without one; the generate command refuses to start when it is empty.
func optionalTargets(key string) []model.CourseKey {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	keys, err := ParseTargets(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return keys
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is must() plus integer conversion.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
