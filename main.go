package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"syker-uplink/internal/config"
	"syker-uplink/internal/logging"
	"syker-uplink/internal/middleware"
	"syker-uplink/internal/processor"
)

func main() {
	log := logging.NewConsole()

	// Load .env for local development (ignored in container deployments)
	if os.Getenv("DOCKER_ENV") == "" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("no .env file found, using system environment variables")
		}
	}

	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	initialize(e, cfg, log)

	log.Info().Str("addr", cfg.ListenAddr).Msg("starting Syker DTL processor")
	if err := http.ListenAndServe(cfg.ListenAddr, e); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func initialize(e *echo.Echo, cfg config.Config, log zerolog.Logger) {
	processorService := processor.NewService(logging.ForComponent(log, "processor"))
	processorHandler := processor.NewHandler(processorService, logging.ForComponent(log, "http"))
	processorHandler.RegisterRoutes(e)

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.SecurityHeaders(cfg.FrontendDomain))
	e.Use(middleware.CORSConfig(cfg.FrontendDomain))
}
