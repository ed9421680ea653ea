package calendars

import "github.com/hangtime-app/hangtime/pkg/errors"

// ErrInvalidRange is returned for writes whose span is empty or
// inverted. Callers match it with errors.Is.
var ErrInvalidRange = errors.Error("invalid range")
