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

	"pjeseza-web/infrastructure/cache"
	"pjeseza-web/infrastructure/clients/pjeseza"
	"pjeseza-web/infrastructure/configuration"
	"pjeseza-web/infrastructure/i18n"
	"pjeseza-web/infrastructure/logger"
	"pjeseza-web/infrastructure/persistence"
	httpHandler "pjeseza-web/interfaces/http"
	"pjeseza-web/server"
	"pjeseza-web/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	app := configuration.C.App

	sessionDB, err := persistence.NewSessionDB(configuration.C.Session.DBPath)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open session database")
		os.Exit(1)
	}
	defer sessionDB.Close()

	// Redis is optional; without it video metadata is fetched fresh each time.
	redisClient := cache.NewRedisClient(configuration.C.RedisClient)
	if redisClient != nil {
		defer redisClient.Close()
		logger.GetLogger().Info("Redis client initialized successfully.")
	}
	infoCache := cache.NewVideoInfoCache(redisClient,
		time.Duration(configuration.C.RedisClient.VideoInfoTTLMinutes)*time.Minute)

	backendClient := pjeseza.NewClient(
		configuration.C.Backend.Host,
		time.Duration(configuration.C.Backend.TimeoutSeconds)*time.Second,
	)
	logger.GetLogger().WithField("backend", configuration.C.Backend.Host).Info("Backend client initialized")

	sessionStore := persistence.NewSessionStore(sessionDB)
	translator := i18n.NewTranslator()

	sessionUsecase := usecase.NewSessionUsecase(sessionStore, backendClient)
	wizardUsecase := usecase.NewWizardUsecase(backendClient, infoCache)
	dashboardUsecase := usecase.NewDashboardUsecase(backendClient)

	userHandler := httpHandler.NewUserHandler(sessionUsecase, wizardUsecase, translator)
	videoHandler := httpHandler.NewVideoHandler(wizardUsecase, dashboardUsecase)
	adminHandler := httpHandler.NewAdminHandler(dashboardUsecase)
	pageHandler := httpHandler.NewPageHandler(sessionUsecase, wizardUsecase, translator)

	router := server.InitiateRouter(userHandler, videoHandler, adminHandler, pageHandler, sessionUsecase)

	port := app.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
