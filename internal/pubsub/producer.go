package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

func NewProducer(cfg Config, log logger.Logger) *Producer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: time.Second * 5,
	}

	return &Producer{
		writer: w,
		log:    log.With("kafka_producer"),
	}
}

type Producer struct {
	writer *kafka.Writer
	log    logger.Logger
}

// Publish emits one schedule-change event. Keyed by user so updates
// for the same user stay ordered within a partition.
func (p *Producer) Publish(ctx context.Context, event Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return errors.WrapFail(err, "marshal event to json")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.User),
		Value: bytes,
	})

	return errors.WrapFail(err, "write event")
}

func (p *Producer) Close() error {
	return errors.WrapFail(p.writer.Close(), "close kafka writer")
}
