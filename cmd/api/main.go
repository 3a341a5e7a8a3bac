package main

import (
	"net/http"
	"os"
	"time"

	"petmate/internal/adapters/auth/token"
	"petmate/internal/config"
	"petmate/internal/platform/clock"
	"petmate/internal/platform/logger"
	"petmate/internal/router"
)

// @title PetMate API
// @version 0.1
// @description Registro de cuidados de mascotas: raciones, agua, peso, medicación y citas veterinarias.
// @BasePath /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	clk := clock.New(cfg.Timezone)

	tokens := token.NewManager(cfg.SessionSecret, time.Duration(cfg.SessionTTLDays)*24*time.Hour)

	r := router.NewRouter(router.Options{
		AuthVerifier: tokens,
		Issuer:       tokens,
		DSN:          cfg.DBDSN,
		DataDir:      cfg.DataDir,
		PhotoDir:     cfg.PhotoDir,
		Clock:        clk,
		Log:          log,
	})

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.ListenAddr, "tz": cfg.Timezone})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
