package provider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind classifies a provider failure.
type Kind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota
	// KindNoResult means the provider answered but found nothing.
	KindNoResult
	// KindInvalidRequest means the input was rejected before or by the provider.
	KindInvalidRequest
	// KindRateLimited means the provider throttled the request.
	KindRateLimited
	// KindQuotaExceeded means the key is out of quota or was denied.
	KindQuotaExceeded
	// KindTimeout means the call hit its deadline.
	KindTimeout
	// KindCanceled means the caller went away.
	KindCanceled
	// KindTransport is a network level failure.
	KindTransport
	// KindUpstream is a non-200 HTTP answer or an unexpected status value.
	KindUpstream
	// KindDecode means the response body could not be understood.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNoResult:
		return "no_result"
	case KindInvalidRequest:
		return "invalid_request"
	case KindRateLimited:
		return "rate_limited"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindTimeout:
		return "timeout"
	case KindCanceled:
		return "canceled"
	case KindTransport:
		return "transport"
	case KindUpstream:
		return "upstream"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is returned by every failing provider call. A provider call either
// returns a usable value or an *Error, never a zero coordinate.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider: %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("provider: %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a provider error of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind == kind
	}
	return false
}

// classifyStatus maps a Google Maps API status value to an error. It returns
// nil for "OK".
func classifyStatus(op, status, message string) *Error {
	if message == "" {
		message = status
	}

	switch status {
	case "OK":
		return nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return &Error{Kind: KindNoResult, Op: op, Message: message}
	case "INVALID_REQUEST", "MAX_WAYPOINTS_EXCEEDED", "MAX_ROUTE_LENGTH_EXCEEDED":
		return &Error{Kind: KindInvalidRequest, Op: op, Message: message}
	case "OVER_QUERY_LIMIT", "OVER_DAILY_LIMIT":
		return &Error{Kind: KindRateLimited, Op: op, Message: message}
	case "REQUEST_DENIED":
		return &Error{Kind: KindQuotaExceeded, Op: op, Message: message}
	default:
		return &Error{Kind: KindUpstream, Op: op, Message: fmt.Sprintf("unexpected status %q", status)}
	}
}

// classifyHTTPStatus maps a non-200 HTTP answer to an error.
func classifyHTTPStatus(op string, code int) *Error {
	switch code {
	case http.StatusTooManyRequests:
		return &Error{Kind: KindRateLimited, Op: op, Message: "rate limit reached"}
	case http.StatusForbidden:
		return &Error{Kind: KindQuotaExceeded, Op: op, Message: "quota exceeded or access denied"}
	case http.StatusBadRequest:
		return &Error{Kind: KindInvalidRequest, Op: op, Message: "request rejected"}
	default:
		return &Error{Kind: KindUpstream, Op: op, Message: fmt.Sprintf("http status %d", code)}
	}
}

// classifyTransport maps an error from http.Client.Do to an error.
func classifyTransport(op string, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Op: op, Message: "deadline exceeded", Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindCanceled, Op: op, Message: "request canceled", Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Op: op, Message: "network timeout", Err: err}
	}

	return &Error{Kind: KindTransport, Op: op, Message: "request failed", Err: err}
}
