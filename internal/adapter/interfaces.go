// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client of the remote accounting engine.
//
// The engine speaks an XML request/response dialect over HTTP POST: export
// envelopes read collections or single objects, import envelopes create,
// alter or delete vouchers. [LedgerAdapter] hides the dialect: every
// response is normalized into [models.Voucher] and friends before it leaves
// the package, so no caller ever sees the raw wrapper shapes.
//
// All outbound calls of one adapter are serialized and spaced at least the
// configured minimum interval apart. Failures are wrapped in one of the
// sentinel errors of errors.go; callers branch with [KindOf] or [errors.Is].
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/voucher-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ledger_adapter_mock.go -package=mock

// LedgerAdapter defines communication with the remote accounting engine.
type LedgerAdapter interface {
	// CheckConnectivity lists the companies open in the remote engine. It
	// never fails: transport errors are reported in the result.
	CheckConnectivity(ctx context.Context) models.Connectivity

	// FetchVouchersSince returns active vouchers whose change sequence is
	// greater than cursor, optionally restricted to kinds.
	FetchVouchersSince(ctx context.Context, cursor int64, kinds []string) ([]models.Voucher, error)

	// FetchVouchersInRange returns active vouchers dated within [from, to].
	FetchVouchersInRange(ctx context.Context, from, to time.Time, kinds []string) ([]models.Voucher, error)

	// FetchAllVoucherIdentities returns the id-only projection of every
	// active voucher. Line items are never fetched.
	FetchAllVoucherIdentities(ctx context.Context, kinds []string) ([]models.VoucherIdentity, error)

	// FetchVoucherDetail returns one voucher with its line items. When the
	// object read path returns nothing, a filtered collection export is
	// tried. Returns [ErrNotFound] if both paths come back empty.
	FetchVoucherDetail(ctx context.Context, remoteID string) (models.Voucher, error)

	// CreateVoucher, UpdateVoucher and DeleteVoucher report success only on
	// an explicit confirmation from the remote engine.
	CreateVoucher(ctx context.Context, payload models.VoucherPayload) (models.MutationResult, error)
	UpdateVoucher(ctx context.Context, payload models.VoucherPayload) (models.MutationResult, error)
	DeleteVoucher(ctx context.Context, remoteID string) (models.MutationResult, error)

	// FetchStockItemsSince and FetchPartiesSince pull master data changed
	// after cursor.
	FetchStockItemsSince(ctx context.Context, cursor int64) ([]models.StockItem, error)
	FetchPartiesSince(ctx context.Context, cursor int64) ([]models.Party, error)
}
