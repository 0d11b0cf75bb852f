// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks voucher records and write payloads before they
// reach the cache or the remote ledger.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are checked;
// an unknown field name yields [ErrUnknownField].
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
