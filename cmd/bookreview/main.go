package main

import (
	"os"

	"github.com/spf13/cobra"

	"bookreview/internal/config"
	"bookreview/internal/database"
	"bookreview/internal/logger"
	"bookreview/internal/repository"
	"bookreview/internal/services"
)

var rootCmd = &cobra.Command{
	Use:   "bookreview",
	Short: "Book review service",
	Long:  "Book review API server and administration tool.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app bundles what the CLI commands need from a loaded configuration.
type app struct {
	cfg   *config.Config
	db    *database.DB
	auth  *services.AuthService
	books *services.BookService
}

func openApp() *app {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.InitLogger(logger.ParseLevel(cfg.Log.Level))

	db, err := database.New(cfg.Database, cfg.IsDevelopment() && cfg.Log.Level == "debug")
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	bookRepo := repository.NewBookRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tokens := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	return &app{
		cfg:   cfg,
		db:    db,
		auth:  services.NewAuthService(userRepo, tokens),
		books: services.NewBookService(bookRepo, reviewRepo),
	}
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		logger.Warningf("Failed to close database: %v", err)
	}
}
