// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/voucher-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldGlobalID       = "global_id"
	FieldRemoteID       = "remote_id"
	FieldChangeSequence = "change_sequence"
	FieldKind           = "kind"
	FieldDate           = "date"
	FieldCounterparty   = "counterparty_name"
	FieldAmount         = "amount"
	FieldLineItems      = "line_items"
	FieldState          = "state"
)

// CreatePayloadFields are checked before pushing a new voucher.
var CreatePayloadFields = []string{FieldKind, FieldDate, FieldCounterparty, FieldAmount, FieldLineItems}

// UpdatePayloadFields are checked before pushing an alteration.
var UpdatePayloadFields = []string{FieldGlobalID, FieldRemoteID, FieldKind, FieldDate, FieldCounterparty, FieldAmount, FieldLineItems}

type VoucherValidator struct{}

func NewVoucherValidator() Validator {
	return &VoucherValidator{}
}

func (v *VoucherValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Voucher:
		return v.validateVoucher(ctx, value, fields...)
	case *models.Voucher:
		return v.validateVoucher(ctx, *value, fields...)

	case models.VoucherPayload:
		return v.validatePayload(ctx, value, fields...)
	case *models.VoucherPayload:
		return v.validatePayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateVoucher checks a normalized record pulled from the remote ledger
// before it is cached.
func (v *VoucherValidator) validateVoucher(ctx context.Context, voucher models.Voucher, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGlobalID, FieldChangeSequence, FieldKind, FieldState}
	}

	for _, f := range fields {
		switch f {
		case FieldGlobalID:
			if strings.TrimSpace(voucher.GlobalID) == "" {
				return ErrInvalidGlobalID
			}
		case FieldRemoteID:
			if strings.TrimSpace(voucher.RemoteID) == "" {
				return ErrInvalidRemoteID
			}
		case FieldChangeSequence:
			if voucher.ChangeSequence < 0 {
				return ErrInvalidChangeSequence
			}
		case FieldKind:
			if strings.TrimSpace(voucher.Kind) == "" {
				return ErrEmptyKind
			}
		case FieldDate:
			if voucher.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldState:
			if voucher.IsDeleted && voucher.IsConverted {
				return ErrInconsistentState
			}
		case FieldLineItems:
			if err := validateLineItems(voucher.LineItems); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VoucherValidator) validatePayload(ctx context.Context, payload models.VoucherPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = CreatePayloadFields
	}

	for _, f := range fields {
		switch f {
		case FieldGlobalID:
			if strings.TrimSpace(payload.GlobalID) == "" {
				return ErrInvalidGlobalID
			}
		case FieldRemoteID:
			if strings.TrimSpace(payload.RemoteID) == "" {
				return ErrInvalidRemoteID
			}
		case FieldKind:
			if strings.TrimSpace(payload.Kind) == "" {
				return ErrEmptyKind
			}
		case FieldDate:
			if payload.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldCounterparty:
			if strings.TrimSpace(payload.CounterpartyName) == "" {
				return ErrEmptyCounterparty
			}
		case FieldAmount:
			if payload.Amount.IsZero() {
				return ErrInvalidAmount
			}
		case FieldLineItems:
			if err := validateLineItems(payload.LineItems); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLineItems(items []models.LineItem) error {
	for i, item := range items {
		if strings.TrimSpace(item.ItemName) == "" {
			return fmt.Errorf("%w at index %d: item name is required", ErrInvalidLineItem, i)
		}
		if item.Quantity.IsNegative() {
			return fmt.Errorf("%w at index %d: negative quantity", ErrInvalidLineItem, i)
		}
	}
	return nil
}
