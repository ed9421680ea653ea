package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hangtime-app/hangtime/internal/api"
	"github.com/hangtime-app/hangtime/internal/availability"
	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/internal/importer"
	"github.com/hangtime-app/hangtime/internal/notify"
	"github.com/hangtime-app/hangtime/internal/pubsub"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	cal, err := calendars.New(ctx, log, cfg.Calendars)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init calendars repo"))
	}

	users, err := friends.New(ctx, log, cfg.Friends)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init friends repo"))
	}

	engine := availability.NewEngine(log, cal, users)

	producer := pubsub.NewProducer(cfg.Events, log)
	consumer := pubsub.NewConsumer(cfg.Events, log)

	telegram, err := notify.NewTelegram(log, cfg.Telegram)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init telegram transport"))
	}

	debouncer := notify.New(log, cfg.Notify, users, telegram)
	fanout := notify.NewFanout(log, users, debouncer)
	consumer.Run(ctx, func(event pubsub.Event) {
		fanout.Handle(ctx, event)
	})

	feeds := importer.New(log, cfg.Importer, cal)

	srv := api.NewServer(cfg.API, log, engine, cal, users, producer, feeds)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		err := errors.Collapse([]error{
			srv.Shutdown(shutdownCtx),
			consumer.Close(),
			producer.Close(),
			users.Close(shutdownCtx),
		})
		if err != nil {
			log.Error(errors.WrapFail(err, "shutdown cleanly"))
		}

		close(stopped)
	})

	stdlog.Println("Serving...")

	err = srv.Serve(ctx)
	if err != nil {
		log.Warn(err)
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
