package events

import "errors"

// ErrPublisherClosed is returned when sending to or listening on a closed bus
var ErrPublisherClosed = errors.New("event publisher closed")
