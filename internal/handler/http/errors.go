// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD layout.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	ErrEmptyGlobalID = errors.New("empty voucher global id")
)
