// Package repository contains all data access for the planner: the catalog
// read the generator consumes, the replace-all schedule write, and the
// reads behind the query and favorites API.  Sentinel errors defined here
// are shared across repositories so handlers can translate failures into
// HTTP statuses with errors.Is.
package repository

import "errors"

// ErrScheduleNotFound is returned when a schedule id matches no stored row.
// Handlers translate it into a 404.
var ErrScheduleNotFound = errors.New("schedule not found")

// ErrFavoriteNotFound is returned when removing a favorite the caller does
// not have.  Handlers translate it into a 404.
var ErrFavoriteNotFound = errors.New("favorite not found")
