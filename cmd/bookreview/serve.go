package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"bookreview/internal/config"
	"bookreview/internal/handlers"
	"bookreview/internal/logger"
	"bookreview/internal/services"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long:  "Start the book review HTTP API.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	a := openApp()
	defer a.Close()

	checkStartup(cmd.Context(), a.cfg, a.auth)

	if !a.cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := os.MkdirAll(a.cfg.Uploads.Path, 0o755); err != nil {
		logger.Fatalf("Failed to create uploads directory: %v", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.cfg.App.Host, a.cfg.App.Port),
		Handler:           handlers.NewRouter(a.cfg, a.db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Forced shutdown: %v", err)
	}
}

// checkStartup warns about a setup that works but is not usable yet.
func checkStartup(ctx context.Context, cfg *config.Config, auth *services.AuthService) {
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		logger.Warning("jwt_secret is the built-in default; set JWT_SECRET before exposing the server")
	}

	hasAdmin, err := auth.HasAdmin(ctx)
	if err != nil {
		logger.Warningf("Failed to check users: %v", err)
		return
	}
	if !hasAdmin {
		logger.Warning("No admin user found. Create one with:")
		logger.Warning("  bookreview user create -e admin@example.com -u admin -p yourpassword -r admin")
	}
}
