package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pizzeria/cmd"
	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres/courierrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config := getConfig(logger)

	gormDB, err := gorm.Open(postgres.Open(dsn(config)), &gorm.Config{})
	if err != nil {
		logger.Error("connecting to database", "error", err)
		os.Exit(1)
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.PaymentDTO{},
		&courierrepo.CourierDTO{},
	); err != nil {
		logger.Error("running migrations", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		logger.Error("building application", "error", err)
		os.Exit(1)
	}

	if err = root.SeedFleet(context.Background()); err != nil {
		logger.Error("seeding fleet", "error", err)
		os.Exit(1)
	}

	jobManager := root.JobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Error("starting jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	e := echo.New()
	httpin.NewServer(root.ServerHandlers()).RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

func getConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file, using process environment")
	}

	return cmd.Config{
		HTTPPort:     envOr("HTTP_PORT", "8080"),
		DBHost:       envOr("DB_HOST", "localhost"),
		DBPort:       envOr("DB_PORT", "5432"),
		DBUser:       envOr("DB_USER", "postgres"),
		DBPassword:   envOr("DB_PASSWORD", "postgres"),
		DBName:       envOr("DB_NAME", "pizzeria"),
		DBSslMode:    envOr("DB_SSLMODE", "disable"),
		OvenCapacity: envIntOr("OVEN_CAPACITY", 12, logger),
	}
}

func dsn(config cmd.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser,
		config.DBPassword, config.DBName, config.DBSslMode,
	)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int, logger *slog.Logger) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid integer in environment, using default", "key", key, "value", raw)
		return fallback
	}
	return value
}
