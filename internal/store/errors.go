// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVoucherNotFound is returned when no cached voucher has the requested
	// global id.
	ErrVoucherNotFound = errors.New("voucher was not found")

	// ErrNotSoftDeleted is reported for purge requests targeting a voucher
	// that is still active or converted.
	ErrNotSoftDeleted = errors.New("voucher is not soft-deleted")

	// ErrPendingNotFound is returned when a pending push queue entry does not exist.
	ErrPendingNotFound = errors.New("pending voucher was not found")

	// ErrPendingAlreadyQueued is returned when a pending entry with the same id
	// is already queued.
	ErrPendingAlreadyQueued = errors.New("pending voucher is already queued")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingStoredValue is returned when a stored decimal, timestamp or
	// JSON payload cannot be decoded.
	ErrDecodingStoredValue = errors.New("failed to decode stored value")
)
