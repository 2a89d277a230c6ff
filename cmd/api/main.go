package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"petstore-server/internal/platform/logger"
	"petstore-server/internal/router"
)

// @title Petstore API
// @version 1.0.0
// @description Demo petstore backend: pets, orders and users over an in-memory store.
// @BasePath /v2
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: log})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
