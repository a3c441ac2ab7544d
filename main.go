package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/client"
	"github.com/umalmyha/customers-console/internal/config"
	"github.com/umalmyha/customers-console/internal/infra"
	"github.com/umalmyha/customers-console/internal/session"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"
)

const DefaultRedisConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		log.Fatalf("failed to build config - %v", err)
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		log.Fatalf("failed to build logger - %v", err)
	}

	store, closeStore, err := formStore(cfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer closeStore()

	api := client.NewRestCustomerAPI(client.Cfg{
		BaseURL: cfg.CustomersAPICfg.URL,
		Timeout: cfg.CustomersAPICfg.Timeout,
	}, logger.WithField("component", "customers-api"))

	app, err := infra.Router(api, store, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to build router - %v", err)
	}

	start(app, cfg.ConsoleCfg, logger)
}

func formStore(cfg config.Config) (session.FormStore, func(), error) {
	if cfg.SessionCfg.Store != config.SessionStoreRedis {
		return session.NewMemoryFormStore(cfg.SessionCfg.TimeToLive), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultRedisConnectTimeout)
	defer cancel()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		_ = redisClient.Close()
	}
	return session.NewRedisFormStore(redisClient, cfg.SessionCfg.TimeToLive), closeFn, nil
}

func start(app *echo.Echo, cfg config.ConsoleCfg, logger logrus.FieldLogger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		logger.Infof("starting customer console on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
