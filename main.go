package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gomartghana/gomart-api/app/cmd"
	"github.com/gomartghana/gomart-api/app/configs"
	"github.com/gomartghana/gomart-api/app/routes"
)

func main() {
	env := configs.LoadEnv()
	logger := configs.InitLogger(env.AppEnv)

	if len(os.Args) > 1 {
		cmd.RunCli(env, logger)
		return
	}

	db, err := configs.OpenConnection(env)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}

	router := routes.NewRouter(db, env, logger)

	server := &http.Server{
		Addr:         env.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", env.Port).Msg("GoMart API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
