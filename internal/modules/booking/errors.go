package booking

import "errors"

var (
	ErrStorage             = errors.New("booking storage failure")
	ErrNotFound            = errors.New("booking not found")
	ErrNotifierUnavailable = errors.New("notifications are not configured")
	ErrNotificationFailed  = errors.New("confirmation was not delivered")
)
