package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sproutly/sproutly/internal/api"
	"github.com/sproutly/sproutly/internal/config"
	"github.com/sproutly/sproutly/internal/curriculum"
	"github.com/sproutly/sproutly/internal/db"
	"github.com/sproutly/sproutly/internal/logger"
	"github.com/sproutly/sproutly/internal/models"
	"github.com/sproutly/sproutly/internal/repository/sqlite"
	"github.com/sproutly/sproutly/internal/services"
	"github.com/sproutly/sproutly/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("Sproutly server starting")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("scan_worker_count=%d", cfg.ScanWorkerCount)
	log.Debug("scan_queue_size=%d", cfg.ScanQueueSize)
	log.Debug("scan_hour_utc=%d", cfg.ScanHourUTC)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	masteryRepo := sqlite.NewMasteryRepository(database.DB)
	profileRepo := sqlite.NewProfileRepository(database.DB)
	curriculumProvider := curriculum.New()

	schedulerService := services.NewSchedulerService(masteryRepo)
	lessonService := services.NewLessonService(schedulerService, curriculumProvider)
	statsService := services.NewStatsService(masteryRepo)
	profileService := services.NewProfileService(profileRepo)

	srv := &api.Server{
		ProfileService:   profileService,
		SchedulerService: schedulerService,
		LessonService:    lessonService,
		StatsService:     statsService,
		DB:               database.DB,
	}

	ctx, cancel := context.WithCancel(context.Background())
	scanPool := worker.NewPool(cfg.ScanWorkerCount, cfg.ScanQueueSize)
	scanPool.Start(ctx)

	// Daily garden scan: parent-digest counts of due and wilting items.
	scanJob := &worker.GardenScanJob{
		ProfileRepo: profileRepo,
		MasteryRepo: masteryRepo,
		Subjects:    []string{models.SubjectMath, models.SubjectLetters},
	}
	cron := gocron.NewScheduler(time.UTC)
	if _, err := cron.Every(1).Day().At(fmt.Sprintf("%02d:00", cfg.ScanHourUTC)).Do(func() {
		scanPool.Submit(scanJob)
	}); err != nil {
		log.Error("failed to schedule garden scan: %v", err)
		os.Exit(1)
	}
	cron.StartAsync()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, shutting down", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cron.Stop()
	cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}
	scanPool.Stop()

	log.Info("Sproutly server stopped")
}
