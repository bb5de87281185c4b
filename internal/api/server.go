package api

import (
	"database/sql"

	"github.com/sproutly/sproutly/internal/services"
)

// Server holds the HTTP surface's dependencies.
type Server struct {
	ProfileService   services.ProfileService
	SchedulerService services.SchedulerService
	LessonService    services.LessonService
	StatsService     services.StatsService
	DB               *sql.DB
}
