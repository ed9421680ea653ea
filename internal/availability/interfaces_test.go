package availability

import (
	"github.com/hangtime-app/hangtime/internal/calendars"
	"github.com/hangtime-app/hangtime/internal/friends"
)

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=availability

type calendarsImpl interface {
	calendars.API
}

type friendsImpl interface {
	friends.API
}
