package friends

import (
	"context"
	"strconv"
)

// User is the identity record the availability core cares about: an
// id, a way to notify, and a friend list for visibility checks.
type User struct {
	ID       string   `json:"id" bson:"id"`
	Username string   `json:"username" bson:"username"`
	Telegram int64    `json:"telegram" bson:"telegram"`
	Friends  []string `json:"friends" bson:"friends"`
}

func (u User) Recipient() string {
	if u.Telegram == 0 {
		return ""
	}

	return strconv.FormatInt(u.Telegram, 10)
}

const (
	FieldID      = "id"
	FieldFriends = "friends"
)

type API interface {
	Upsert(ctx context.Context, user User) error
	Get(ctx context.Context, id string) (*User, error)
	Exists(ctx context.Context, id string) (bool, error)

	// Allowed reports whether requester may see target's calendar:
	// self always, otherwise only a mutual friendship.
	Allowed(ctx context.Context, requester, target string) (bool, error)

	AddFriend(ctx context.Context, user, friend string) error

	Close(ctx context.Context) error
}
