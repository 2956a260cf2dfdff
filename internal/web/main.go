// Package web implements the HTTP service of the wedding site.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	recovermw "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/familia-santos/aurora-site/internal/config"
	"github.com/familia-santos/aurora-site/internal/registry"
	"github.com/familia-santos/aurora-site/internal/web/handler"
	"github.com/familia-santos/aurora-site/internal/web/handler/gifts"
	"github.com/familia-santos/aurora-site/internal/web/handler/login"
	"github.com/familia-santos/aurora-site/internal/web/handler/publicimages"
	"github.com/familia-santos/aurora-site/internal/web/handler/rsvp"
	"github.com/familia-santos/aurora-site/internal/web/handler/supporters"
	"github.com/familia-santos/aurora-site/internal/web/middleware/auth"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	reg   *registry.Registry
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and drains the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	log.Info().Msgf(
		"graceful shutdown: return 503 while %d seconds to let LB remove this instance from active targets",
		s.cfg.Webserver.ShutDownTime,
	)

	s.alive.Store(false)
	time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, reg *registry.Registry) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if reg == nil {
		panic("registry cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        "aurora-site",
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recovermw.New())
	}

	// admin pages gate
	app.Use(auth.PanelGate)

	service := &Service{
		cfg: cfg,
		App: app,
		reg: reg,
	}

	service.alive.Store(true)

	app.Get("/checkalive", func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes with admin checks)
	for name, h := range map[string]handler.Service{
		"login":         &login.Handler,
		"gifts":         &gifts.Handler,
		"rsvp":          &rsvp.Handler,
		"supporters":    &supporters.Handler,
		"public-images": &publicimages.Handler,
	} {
		if err := h.Init(app, cfg, reg); err != nil {
			log.Fatal().Err(err).Str("handler", name).Msg("failed to init handler")
		}
	}

	// public static assets, including /uploads
	app.Static("/", cfg.Webserver.PublicDir)

	return service
}

// Addr returns the listen address derived from the configuration.
func (s *Service) Addr() string {
	return fmt.Sprintf(":%d", s.cfg.Webserver.Port)
}
