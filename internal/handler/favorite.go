package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ositola/schedule-planner/internal/middleware"
	"github.com/ositola/schedule-planner/internal/repository"
)

// FavoriteHandler serves per-user schedule favorites.  All routes sit
// behind JWTAuth, so the user id is always present in the context.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
	Schedules *repository.ScheduleRepo
}

// favoriteRequest is the JSON body for creating a favorite.
type favoriteRequest struct {
	ScheduleID uint64 `json:"schedule_id"`
}

// favoriteResponse confirms a favorite operation.
type favoriteResponse struct {
	ScheduleID  uint64 `json:"schedule_id"`
	FavoritedAt string `json:"favorited_at"`
}

// favoriteItem is one entry in the favorites list.
type favoriteItem struct {
	ScheduleSummary
	FavoritedAt string `json:"favorited_at"`
}

// Create marks a schedule as a favorite of the caller.  Favoriting an
// already-favorited schedule just refreshes the timestamp.
func (h *FavoriteHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	var req favoriteRequest
	if err := c.Bind(&req); err != nil || req.ScheduleID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "schedule_id is required"})
	}

	// Verify the schedule exists before writing, so the client gets a 404
	// instead of a constraint error.
	if _, err := h.Schedules.GetByID(ctx, req.ScheduleID); err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	at, err := h.Favorites.Upsert(ctx, userID, req.ScheduleID)
	if err != nil {
		if errors.Is(err, repository.ErrScheduleNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, favoriteResponse{
		ScheduleID:  req.ScheduleID,
		FavoritedAt: at.UTC().Format(time.RFC3339),
	})
}

// List returns the caller's favorited schedules, newest favorite first.
func (h *FavoriteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	favs, err := h.Favorites.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]favoriteItem, 0, len(favs))
	for i := range favs {
		out = append(out, favoriteItem{
			ScheduleSummary: toSummary(&favs[i].Schedule),
			FavoritedAt:     favs[i].FavoritedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// Delete removes a favorite by schedule id.
func (h *FavoriteHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	userID := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Favorites.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "favorite not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
