package main

import (
	"github.com/studytrack/studytrack/internal/config"
	"github.com/studytrack/studytrack/internal/handlers"
	"github.com/studytrack/studytrack/internal/models"
	"github.com/studytrack/studytrack/internal/services"
	"github.com/studytrack/studytrack/internal/utils"
	"github.com/studytrack/studytrack/pkg/logger"
)

// appServices holds the long-lived services wired at startup. The task queue
// and worker are reached through their package-level accessors.
type appServices struct {
	reminderService *services.ReminderService
	authHandler     *handlers.AuthHandler
}

// bootstrap initializes the database, the activity logger, the reminder
// pipeline, and the schedulers.
func bootstrap(cfg *config.Config) *appServices {
	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTIssuer(cfg.JWT.Issuer, cfg.JWT.Audience)

	if err := models.InitDB(&cfg.Database); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		logger.Fatalf("Failed to migrate database: %v", err)
	}

	services.InitActivityLogger(models.GetDB())

	// Reminder pipeline: cron scan -> queue -> activity log. The queue is
	// Redis-backed when enabled, otherwise reminders are delivered in-process.
	taskQueue := services.InitTaskQueue(cfg)
	reminderService := services.NewReminderService(models.GetDB(), taskQueue, &cfg.Reminder)

	if syncQueue, ok := taskQueue.(*services.SyncQueue); ok {
		syncQueue.SetProcessor(reminderService.DeliverReminder)
	}

	if cfg.Redis.Enabled {
		if worker := services.InitWorker(&cfg.Redis); worker != nil {
			worker.SetProcessor(reminderService.DeliverReminder)
			worker.Start()
		}
	}

	if err := reminderService.StartScheduler(); err != nil {
		logger.Fatalf("Failed to start reminder scheduler: %v", err)
	}

	return &appServices{
		reminderService: reminderService,
		authHandler:     handlers.NewAuthHandler(models.GetDB(), cfg),
	}
}

// shutdown gracefully stops all services.
func (s *appServices) shutdown() {
	s.reminderService.StopScheduler()
	logger.Info().Msg("Reminder scheduler stopped")

	if worker := services.GetWorker(); worker != nil {
		worker.Stop()
	}
	if queue := services.GetTaskQueue(); queue != nil {
		queue.Close()
	}
}
