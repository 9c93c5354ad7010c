package main

import (
	"net/http"
	"os"
	"time"

	_ "dietpet/docs"
	"dietpet/internal/platform/logger"
	"dietpet/internal/router"
)

// @title dietpet API
// @version 1.0
// @description Single-user pet care tracker: pet profiles, diet plans
// @description and a trash bin with timed retention.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	log := logger.NewFromEnv()

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
