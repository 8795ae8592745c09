// Package queue defines the message payloads exchanged over the broker
// and the background consumer that logs them.
package queue

// RunCompletedEvent is published after a generate run has replaced the
// stored result set.  It carries enough for downstream consumers (cache
// warmers, notifiers, dashboards) to react without querying the database.
type RunCompletedEvent struct {
	TargetCourses     []string `json:"target_courses"`
	CandidatesChecked int      `json:"candidates_checked"`
	SchedulesWritten  int      `json:"schedules_written"`
	ElapsedMillis     int64    `json:"elapsed_ms"`
	CompletedAt       string   `json:"completed_at"`
}
