// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared message constants used by the control-surface
// handlers and middleware.
//
// Plain-text bodies written outside of the JSON result envelope use these
// strings, so the wording stays the same across middleware.
package app

const (
	// MsgInvalidGzipData is returned when a request declares gzip encoding
	// but its body is not a valid gzip stream.
	MsgInvalidGzipData = "invalid gzip data"

	// MsgStreamingNotSupported is returned by the event stream when the
	// response writer cannot flush partial output.
	MsgStreamingNotSupported = "streaming is not supported"

	// MsgInternalServerError is written by the JSON helpers when a response
	// cannot be encoded.
	MsgInternalServerError = "internal server error"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// requested with an unsupported method.
	MsgRouteNotFound = "route not found"
)
