package pubsub

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

func NewConsumer(cfg Config, log logger.Logger) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:       cfg.Brokers,
		Topic:         cfg.Topic,
		GroupID:       cfg.Group,
		QueueCapacity: 1024,
		MaxAttempts:   3,
	})

	return &Consumer{
		reader: reader,
		log:    log.With("kafka_consumer"),
	}
}

type Consumer struct {
	reader *kafka.Reader
	log    logger.Logger
}

// Run pumps schedule-change events into handle until ctx is done.
// Decode failures skip the message; fetch failures are logged and
// retried by the next iteration.
func (c *Consumer) Run(ctx context.Context, handle func(Event)) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.log.Error(errors.WrapFail(err, "fetch message"))
				continue
			}

			var event Event
			err = json.Unmarshal(msg.Value, &event)
			if err != nil {
				c.log.Warn(errors.WrapFail(err, "decode event"))
			} else {
				handle(event)
			}

			err = c.reader.CommitMessages(ctx, msg)
			if err != nil {
				c.log.Error(errors.WrapFail(err, "commit message"))
			}
		}
	}()
}

func (c *Consumer) Close() error {
	return errors.WrapFail(c.reader.Close(), "close kafka reader")
}
