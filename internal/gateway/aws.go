package gateway

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"
)

// ClassifyAWS maps an error returned by an AWS SDK call onto a Kind. Service
// specific not-found types must be checked by the caller first.
func ClassifyAWS(op string, err error) *Error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return Transport(op, "request cancelled", err)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return NotFound(op, "resource does not exist", err)
		case "InvalidClientTokenId", "UnrecognizedClientException", "MissingAuthenticationToken":
			return Configuration(op, "credentials rejected", err)
		}
		return Transport(op, apiErr.ErrorCode(), err)
	}

	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		return Transport(op, "request failed", err)
	}

	return Unknown(op, "unexpected error", err)
}
