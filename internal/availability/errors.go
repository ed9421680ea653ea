package availability

import "github.com/hangtime-app/hangtime/pkg/errors"

var (
	// ErrInvalidWindow rejects inverted windows and windows longer
	// than MaxWindow before any computation happens.
	ErrInvalidWindow = errors.Error("invalid query window")

	// ErrUnknownUser fails the whole batch on the first user id that
	// storage does not know.
	ErrUnknownUser = errors.Error("unknown user")

	// ErrPermissionDenied fails queries about users who are neither
	// the requester nor a mutual friend.
	ErrPermissionDenied = errors.Error("not allowed to see this calendar")
)
