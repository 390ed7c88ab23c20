package main

import (
	"os"
	"os/signal"
	"syscall"

	"learnhub/config"
	"learnhub/database"
	"learnhub/routers"
	"learnhub/scheduler"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig

	log := utils.InitLogger(cfg.Environment)
	defer log.Sync()

	database.ConnectDb(cfg.DBDriver, cfg.DSN(), log)
	utils.InitNotifier(cfg.NotifyWebhookURL)

	cron, err := scheduler.Start(database.Database.Db, scheduler.Specs{
		Reconcile:  cfg.ReconcileCron,
		EventSweep: cfg.EventSweepCron,
	})
	if err != nil {
		log.Fatal("Failed to start scheduler", zap.Error(err))
	}

	app := fiber.New(fiber.Config{AppName: "learnhub"})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	routers.Setup(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("Shutting down")
		<-cron.Stop().Done()
		if err := app.Shutdown(); err != nil {
			log.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("Server is running", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}
