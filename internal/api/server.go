package api

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hangtime-app/hangtime/internal/availability"
	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

func NewServer(
	cfg Config,
	log logger.Logger,
	engine *availability.Engine,
	cal calendars.API,
	users friends.API,
	events Events,
	feeds Feeds,
) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		engine: engine,
		cal:    cal,
		users:  users,
		events: events,
		feeds:  feeds,
		http:   fiber.New(fiberCfg),
		addr:   cfg.HTTP.Addr,
		log:    serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	engine *availability.Engine
	cal    calendars.API
	users  friends.API
	events Events
	feeds  Feeds
	http   *fiber.App
	addr   string
	log    logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.cal.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close calendars repo"))
	}

	err = s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	return errors.Collapse(errs)
}

func (s *server) setupRoutes() {
	s.http.Use(s.authenticate)

	s.http.Get("/availability/busy", s.handleBusy)
	s.http.Get("/availability/gaps", s.handleGaps)
	s.http.Get("/availability/free", s.handleWhoIsFree)

	s.http.Post("/calendar/manual", s.handleAddManual)
	s.http.Delete("/calendar/manual", s.handleDeleteManual)
	s.http.Post("/calendar/repeating", s.handleAddRepeating)
	s.http.Delete("/calendar/repeating", s.handleDeleteRepeating)
	s.http.Post("/calendar/import", s.handleImport)

	s.http.Post("/events", s.handleAddCommitment)

	s.http.Put("/users", s.handleUpsertUser)
	s.http.Post("/friends", s.handleAddFriend)
}
