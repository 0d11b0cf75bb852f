// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VoucherState is the lifecycle state of a cached voucher. A voucher is in
// exactly one state at a time.
type VoucherState string

const (
	VoucherActive    VoucherState = "active"
	VoucherDeleted   VoucherState = "deleted"
	VoucherConverted VoucherState = "converted"
)

// Voucher is one accounting transaction mirrored from the remote ledger.
//
// GlobalID is the cross-session stable identifier and the key for every
// existence check. RemoteID is only stable within one remote session and is
// used for detail fetches and write-back. ChangeSequence is the remote
// alteration counter used as the incremental sync cursor.
type Voucher struct {
	GlobalID       string `json:"global_id"`
	RemoteID       string `json:"remote_id"`
	ChangeSequence int64  `json:"change_sequence"`

	Kind             string          `json:"kind"`
	Number           string          `json:"number"`
	Date             time.Time       `json:"date"`
	CounterpartyName string          `json:"counterparty_name"`
	Amount           decimal.Decimal `json:"amount"`
	Note             string          `json:"note"`

	// CreatedAt and LastModifiedAt are reported by the remote system, not
	// by the local cache.
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	LastModifiedAt *time.Time `json:"last_modified_at,omitempty"`

	IsDeleted     bool   `json:"is_deleted"`
	DeletedReason string `json:"deleted_reason,omitempty"`

	IsConverted     bool   `json:"is_converted"`
	ConvertedToKind string `json:"converted_to_kind,omitempty"`

	AuditFlag    bool             `json:"audit_flag"`
	PaymentModes PaymentBreakdown `json:"payment_modes"`

	LineItems []LineItem `json:"line_items,omitempty"`
}

// PaymentBreakdown splits the voucher amount by payment mode. The values
// come from custom fields on the remote voucher and are zero when absent.
type PaymentBreakdown struct {
	Cash   decimal.Decimal `json:"cash"`
	Bank   decimal.Decimal `json:"bank"`
	UPI    decimal.Decimal `json:"upi"`
	Cheque decimal.Decimal `json:"cheque"`
}

// IsZero reports whether no payment mode carries an amount.
func (p PaymentBreakdown) IsZero() bool {
	return p.Cash.IsZero() && p.Bank.IsZero() && p.UPI.IsZero() && p.Cheque.IsZero()
}

// State derives the lifecycle state from the flags.
func (v Voucher) State() VoucherState {
	switch {
	case v.IsConverted:
		return VoucherConverted
	case v.IsDeleted:
		return VoucherDeleted
	default:
		return VoucherActive
	}
}

// Identity returns the lightweight identity of the voucher.
func (v Voucher) Identity() VoucherIdentity {
	return VoucherIdentity{
		GlobalID: v.GlobalID,
		RemoteID: v.RemoteID,
		Kind:     v.Kind,
		Number:   v.Number,
	}
}

// VoucherIdentity is the id-only projection used by reconciliation.
type VoucherIdentity struct {
	GlobalID string `json:"global_id"`
	RemoteID string `json:"remote_id,omitempty"`
	Kind     string `json:"kind"`
	Number   string `json:"number"`
}

// LineItem is one inventory line of a voucher. Line items are always
// replaced as a whole set, never merged.
type LineItem struct {
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
	Warehouse string          `json:"warehouse,omitempty"`
}

// Conversion marks a vanished draft voucher as finalized into NewKind.
type Conversion struct {
	GlobalID string `json:"global_id"`
	NewKind  string `json:"new_kind"`
}
