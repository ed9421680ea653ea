package notify

import (
	"context"

	"github.com/hangtime-app/hangtime/internal/pubsub"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

// Notifier is the debouncing side of fan-out. Notify reports whether
// a fresh delivery was scheduled or the update was coalesced into one
// already pending.
type Notifier interface {
	Notify(user, topic string) bool
}

// Fanout decides who a schedule-change event reaches. A calendar
// change goes to the owner's friends, a commitment event goes to the
// attendee named on it.
type Fanout struct {
	users UserSource
	deb   Notifier
	log   logger.Logger
}

func NewFanout(log logger.Logger, users UserSource, deb Notifier) *Fanout {
	return &Fanout{
		users: users,
		deb:   deb,
		log:   log.With("notify_fanout"),
	}
}

func (f *Fanout) Handle(ctx context.Context, event pubsub.Event) {
	if event.Topic == pubsub.TopicCommitment {
		f.deb.Notify(event.User, event.Topic)
		return
	}

	user, err := f.users.Get(ctx, event.User)
	if err != nil {
		f.log.Warn(errors.WrapFailf(err, "resolve user %s for fan-out", event.User))
		return
	}
	if user == nil {
		return
	}

	for _, friend := range user.Friends {
		f.deb.Notify(friend, event.Topic)
	}
}
