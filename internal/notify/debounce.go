package notify

import (
	"context"
	"sync"
	"time"

	"github.com/hangtime-app/hangtime/internal/friends"
	"github.com/hangtime-app/hangtime/pkg/errors"
	"github.com/hangtime-app/hangtime/pkg/logger"
)

const deliverTimeout = 10 * time.Second

type Config struct {
	// Delay is both the coalescing window and how long a delivery is
	// deferred after the first update in a burst.
	Delay time.Duration `yaml:"delay"`
}

// UserSource resolves a user id right before delivery, so the pushed
// notification reflects state at send time, not at schedule time.
type UserSource interface {
	Get(ctx context.Context, id string) (*friends.User, error)
}

// Transport performs the actual push for one (user, topic) pair.
// Failures are absorbed by the debouncer, never propagated to the
// write that triggered them.
type Transport interface {
	Send(ctx context.Context, user friends.User, topic string) error
}

// Debouncer coalesces bursts of updates into at most one delivered
// notification per (user, topic) per delay window. Once a delivery is
// scheduled it always fires; there is no cancellation.
type Debouncer struct {
	mu   sync.Mutex
	next map[key]time.Time

	delay     time.Duration
	users     UserSource
	transport Transport
	log       logger.Logger

	now   func() time.Time
	after func(d time.Duration, f func())
}

type key struct {
	user  string
	topic string
}

func New(log logger.Logger, cfg Config, users UserSource, transport Transport) *Debouncer {
	return &Debouncer{
		next:      make(map[key]time.Time),
		delay:     cfg.Delay,
		users:     users,
		transport: transport,
		log:       log.With("notify"),
		now:       time.Now,
		after:     func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Notify registers an update for (user, topic). It returns true if a
// delivery was scheduled and false if the update was coalesced into an
// already pending one. The lock covers only the watermark
// check-and-advance, never the wait or the send.
func (d *Debouncer) Notify(user, topic string) bool {
	k := key{user: user, topic: topic}
	now := d.now()

	d.mu.Lock()
	if eligible, ok := d.next[k]; ok && now.Before(eligible) {
		d.mu.Unlock()
		return false
	}
	d.next[k] = now.Add(d.delay)
	d.mu.Unlock()

	d.after(d.delay, func() { d.deliver(k) })
	return true
}

func (d *Debouncer) deliver(k key) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	user, err := d.users.Get(ctx, k.user)
	if err != nil {
		d.log.Warn(errors.WrapFailf(err, "resolve user %s for notification", k.user))
		return
	}
	if user == nil {
		d.log.Warnf("dropping %q notification for vanished user %s", k.topic, k.user)
		return
	}

	err = d.transport.Send(ctx, *user, k.topic)
	if err != nil {
		d.log.Warn(errors.WrapFailf(err, "deliver %q notification to %s", k.topic, k.user))
	}
}
