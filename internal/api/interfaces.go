package api

import (
	"context"

	"github.com/hangtime-app/hangtime/internal/pubsub"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Events receives schedule-change announcements from write handlers.
type Events interface {
	Publish(ctx context.Context, event pubsub.Event) error
}

// Feeds imports an external ICS feed into a user's imported calendar.
type Feeds interface {
	ImportFeed(ctx context.Context, user, url string) (int, error)
}
