// Package gateway holds the error model shared by the external-service gateways
// (object storage, email, SMS).
//
// Gateways never panic into their callers. Every failure is returned as an *Error
// whose Kind is one of a small closed set, so handlers can switch on it:
//
//	url, err := store.IssueAccessURL(ctx, key, time.Hour)
//	if gateway.IsKind(err, gateway.KindNotFound) {
//	    ...
//	}
package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure.
type Kind string

const (
	KindNotFound         Kind = "NOT_FOUND"
	KindTransportFailure Kind = "TRANSPORT_FAILURE"
	KindConfiguration    Kind = "CONFIGURATION_ERROR"
	KindUnknown          Kind = "UNKNOWN"
)

// Error is a classified gateway failure.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error with the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrNotFound         = &Error{Kind: KindNotFound, Message: "not found"}
	ErrTransportFailure = &Error{Kind: KindTransportFailure, Message: "transport failure"}
	ErrConfiguration    = &Error{Kind: KindConfiguration, Message: "configuration error"}
)

func NotFound(op, msg string, cause error) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: msg, cause: cause}
}

func Transport(op, msg string, cause error) *Error {
	return &Error{Kind: KindTransportFailure, Op: op, Message: msg, cause: cause}
}

func Configuration(op, msg string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Op: op, Message: msg, cause: cause}
}

func Unknown(op, msg string, cause error) *Error {
	return &Error{Kind: KindUnknown, Op: op, Message: msg, cause: cause}
}

// KindOf returns the kind of err, KindUnknown for unclassified errors and ""
// for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a gateway error of kind k.
func IsKind(err error, k Kind) bool {
	return err != nil && KindOf(err) == k
}

// Observer is told about every classified gateway failure, e.g. to count
// them. component names the gateway ("storage", "email", "sms").
type Observer interface {
	GatewayError(component string, kind Kind)
}

// NopObserver discards observations.
type NopObserver struct{}

func (NopObserver) GatewayError(string, Kind) {}
