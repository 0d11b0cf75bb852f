// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"

	"github.com/go-resty/resty/v2"
)

// ErrorKind is the coarse failure class callers branch on. The wrapped
// error message keeps the raw diagnostic string for logging.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindConnectionRefused ErrorKind = "connection_refused"
	KindTimeout           ErrorKind = "timeout"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindRemoteRejected    ErrorKind = "remote_rejected"
	KindUnknown           ErrorKind = "unknown"
)

var (
	ErrConnectionRefused = errors.New("remote ledger unreachable")
	ErrTimeout           = errors.New("remote ledger timed out")
	ErrMalformedResponse = errors.New("malformed remote response")
	ErrRemoteRejected    = errors.New("remote ledger rejected the request")

	// ErrNotFound is returned when neither read path yields the record.
	ErrNotFound = fmt.Errorf("%w: record not found", ErrRemoteRejected)

	errMissingRemoteID = errors.New("remote id is required")
)

// KindOf maps err to its [ErrorKind]. A nil error yields [KindNone].
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrConnectionRefused):
		return KindConnectionRefused
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.Is(err, ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, ErrRemoteRejected):
		return KindRemoteRejected
	default:
		return KindUnknown
	}
}

// IsTransport reports whether err means the remote ledger could not be
// reached at all. Such failures are retried by the next poll cycle.
func IsTransport(err error) bool {
	kind := KindOf(err)
	return kind == KindConnectionRefused || kind == KindTimeout
}

func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("remote call cancelled: %w", err)
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %s", ErrTimeout, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("%w: %s", ErrConnectionRefused, err)
	default:
		// DNS failures, resets and unreachable hosts
		return fmt.Errorf("%w: %s", ErrConnectionRefused, err)
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrTimeout, resp.StatusCode(), body)
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: http %d: %s", ErrConnectionRefused, resp.StatusCode(), body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrRemoteRejected, resp.StatusCode(), body)
	}
}
