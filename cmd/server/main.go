package main

import (
	"log"

	"focuscontrol/internal/coach"
	"focuscontrol/internal/config"
	"focuscontrol/internal/db"
	"focuscontrol/internal/handler"
	"focuscontrol/internal/notify"
	"focuscontrol/internal/repository"
	"focuscontrol/internal/router"
	"focuscontrol/internal/service"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	taskRepo := repository.NewTaskRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	interruptionRepo := repository.NewInterruptionRepository(database)

	coachClient := coach.NewClient(cfg.OllamaBaseURL, cfg.OllamaModel, cfg.CoachTimeout)
	notifier := notify.NewNotifier(cfg.WebhookURL, cfg.WebhookTimeout)

	taskService := service.NewTaskService(taskRepo)
	focusService := service.NewFocusService(
		sessionRepo,
		interruptionRepo,
		taskRepo,
		notifier,
		cfg.AutoBreakEnabled,
		cfg.AutoBreakMinutes,
		cfg.AlarmAudioURL,
	)
	coachService := service.NewCoachService(coachClient)

	taskHandler := handler.NewTaskHandler(taskService)
	focusHandler := handler.NewFocusHandler(focusService)
	coachHandler := handler.NewCoachHandler(coachService)

	engine := router.New(taskHandler, focusHandler, coachHandler, cfg.CORSOrigins)
	log.Printf("backend listening on :%s", cfg.Port)
	if err := engine.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
