package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/preston-bernstein/dota-teaminfo/internal/domain/teams"
)

// ErrProviderUnavailable is returned when no upstream provider is wired.
var ErrProviderUnavailable = errors.New("provider unavailable")

// TransportError captures network failures, non-200 responses and bodies
// that could not be decoded.
type TransportError struct {
	Provider   string
	TeamID     teams.TeamID
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "team %s: ", e.TeamID)
	switch {
	case e.StatusCode > 0 && e.StatusCode != 200:
		fmt.Fprintf(&b, "unexpected status %d", e.StatusCode)
		if e.Body != "" {
			b.WriteString(": ")
			b.WriteString(e.Body)
		}
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString("transport failure")
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NotFoundError means the upstream answered but not with the requested team.
type NotFoundError struct {
	Provider string
	TeamID   teams.TeamID
	GotID    string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("API did not return team info for id: %s", e.TeamID)
	if e.GotID != "" {
		msg = fmt.Sprintf("%s (got %s)", msg, e.GotID)
	}
	if e.Provider != "" {
		return e.Provider + ": " + msg
	}
	return msg
}

// AsTransportError attempts to unwrap an error into a TransportError.
func AsTransportError(err error) (*TransportError, bool) {
	var tErr *TransportError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nfErr *NotFoundError
	if errors.As(err, &nfErr) {
		return nfErr, true
	}
	return nil, false
}

// ErrorKind classifies err for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrProviderUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	if _, ok := AsNotFoundError(err); ok {
		return "not_found"
	}
	if _, ok := AsTransportError(err); ok {
		return "transport"
	}
	return "other"
}
