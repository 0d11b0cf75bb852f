// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrAlreadySyncing is reported when a sync pass is requested while
	// another one is in flight.
	ErrAlreadySyncing = errors.New("already syncing")

	// ErrRemoteOffline is reported when the connectivity check fails.
	ErrRemoteOffline = errors.New("remote ledger is offline")

	// ErrEmptyRemoteSet aborts a reconciliation that received no remote
	// identities while the local cache still holds active vouchers.
	ErrEmptyRemoteSet = errors.New("remote returned no vouchers while local cache is not empty")

	// ErrPassPanicked replaces the error of a pass that panicked.
	ErrPassPanicked = errors.New("sync pass panicked")

	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidPayload   = errors.New("invalid voucher payload")
	ErrVoucherNotFound  = errors.New("voucher not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
