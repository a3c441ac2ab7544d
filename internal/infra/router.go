package infra

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customers-console/internal/client"
	"github.com/umalmyha/customers-console/internal/config"
	"github.com/umalmyha/customers-console/internal/console"
	"github.com/umalmyha/customers-console/internal/handlers"
	"github.com/umalmyha/customers-console/internal/middleware"
	"github.com/umalmyha/customers-console/internal/session"
	"github.com/umalmyha/customers-console/internal/validation"
)

func Router(api client.CustomerAPI, store session.FormStore, cfg config.Config, logger logrus.FieldLogger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logger.WithField("session", middleware.SessionID(c)).Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}

	// Extra functionality
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	e.Validator = validation.Echo(v)

	renderer, err := handlers.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// Middleware
	sessionMw := middleware.Session(cfg.SessionCfg.CookieName, cfg.SessionCfg.TimeToLive)
	e.Use(middleware.Logger(logger.WithField("component", "http")))

	// Handlers
	consoleHandler := handlers.NewConsoleHTTPHandler(
		api,
		store,
		console.Config{SearchMode: console.SearchMode(cfg.ConsoleCfg.SearchMode)},
		logger.WithField("component", "console"),
	)

	e.GET("/health", consoleHandler.Health)

	e.GET("/", consoleHandler.Page, sessionMw)
	e.POST("/console/:action", consoleHandler.Act, sessionMw)
	e.DELETE("/session", consoleHandler.Reset, sessionMw)

	return e, nil
}
