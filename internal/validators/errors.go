// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGlobalID       = errors.New("invalid global id")
	ErrInvalidRemoteID       = errors.New("invalid remote id")
	ErrInvalidChangeSequence = errors.New("invalid change sequence")
	ErrEmptyKind             = errors.New("voucher kind is required")
	ErrInvalidDate           = errors.New("voucher date is required")
	ErrEmptyCounterparty     = errors.New("counterparty name is required")
	ErrInvalidAmount         = errors.New("voucher amount must not be zero")
	ErrInvalidLineItem       = errors.New("invalid line item")
	ErrInconsistentState     = errors.New("voucher cannot be both deleted and converted")
)
