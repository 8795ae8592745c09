package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ositola/schedule-planner/internal/model"
)

// FavoriteRepo persists per-user schedule favorites.  The favorites table
// is keyed on (user_id, schedule_id); favoriting an already-favorited
// schedule refreshes its timestamp.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo constructs a FavoriteRepo with the given DB handle.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// FavoriteSchedule is a schedule summary with the time the caller
// favorited it.
type FavoriteSchedule struct {
	model.Schedule
	FavoritedAt time.Time
}

// Upsert records the schedule as a favorite of the user and returns the
// stored timestamp.  ErrScheduleNotFound when the schedule id does not
// reference a stored schedule.
func (r *FavoriteRepo) Upsert(ctx context.Context, userID, scheduleID uint64) (time.Time, error) {
	now := time.Now().UTC().Truncate(time.Second)
	const q = `INSERT INTO favorites (user_id, schedule_id, favorited_at)
               VALUES (?, ?, ?)
               ON DUPLICATE KEY UPDATE favorited_at = VALUES(favorited_at)`
	_, err := r.db.ExecContext(ctx, q, userID, scheduleID, now)
	if err != nil {
		// 1452: foreign key violation, i.e. the schedule does not exist.
		if strings.Contains(err.Error(), "1452") {
			return time.Time{}, ErrScheduleNotFound
		}
		return time.Time{}, err
	}
	return now, nil
}

// Delete removes a favorite of the user.  ErrFavoriteNotFound when the
// user never favorited the schedule.
func (r *FavoriteRepo) Delete(ctx context.Context, userID, scheduleID uint64) error {
	const q = `DELETE FROM favorites WHERE user_id = ? AND schedule_id = ?`
	res, err := r.db.ExecContext(ctx, q, userID, scheduleID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListByUser returns the user's favorited schedules, most recently
// favorited first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]FavoriteSchedule, error) {
	const q = `SELECT s.id, s.total_credits, s.total_instructor_score, s.num_sections,
                      s.meets_mon, s.meets_tue, s.meets_wed, s.meets_thu, s.meets_fri, s.meets_sat,
                      s.earliest_start, s.latest_end, s.campus_pattern, s.created_at,
                      f.favorited_at
               FROM favorites f
               JOIN schedules s ON s.id = f.schedule_id
               WHERE f.user_id = ?
               ORDER BY f.favorited_at DESC, s.id ASC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []FavoriteSchedule
	for rows.Next() {
		var fav FavoriteSchedule
		var rating sql.NullFloat64
		var earliest, latest string
		if err := rows.Scan(
			&fav.ID, &fav.TotalCredits, &rating, &fav.NumSections,
			&fav.MeetsMon, &fav.MeetsTue, &fav.MeetsWed, &fav.MeetsThu, &fav.MeetsFri, &fav.MeetsSat,
			&earliest, &latest, &fav.CampusPattern, &fav.CreatedAt,
			&fav.FavoritedAt,
		); err != nil {
			return nil, err
		}
		if rating.Valid {
			v := rating.Float64
			fav.AvgRating = &v
		}
		if fav.EarliestStart, err = model.ParseClock(earliest); err != nil {
			return nil, err
		}
		if fav.LatestEnd, err = model.ParseClock(latest); err != nil {
			return nil, err
		}
		result = append(result, fav)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
