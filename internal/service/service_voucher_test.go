// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voucher-sync/internal/adapter"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/internal/mock"
	"github.com/MKhiriev/voucher-sync/internal/store"
	"github.com/MKhiriev/voucher-sync/models"
)

type voucherFixture struct {
	svc      *voucherService
	adapter  *mock.MockLedgerAdapter
	vouchers *mock.MockVoucherRepository
	pending  *mock.MockPendingRepository
	notifier *mock.MockNotifier
}

func newVoucherFixture(t *testing.T) *voucherFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &voucherFixture{
		adapter:  mock.NewMockLedgerAdapter(ctrl),
		vouchers: mock.NewMockVoucherRepository(ctrl),
		pending:  mock.NewMockPendingRepository(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}
	storages := &store.Storages{Vouchers: f.vouchers, Pending: f.pending}
	f.svc = NewVoucherService(f.adapter, storages, f.notifier, logger.Nop()).(*voucherService)
	f.svc.newID = func() string { return "pending-1" }
	return f
}

func validPayload() models.VoucherPayload {
	return models.VoucherPayload{
		Kind:             "Sales",
		Date:             time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		CounterpartyName: "Acme Traders",
		Amount:           decimal.NewFromInt(250),
		LineItems: []models.LineItem{
			{ItemName: "Bolt", Quantity: decimal.NewFromInt(10), Unit: "pcs", Rate: decimal.NewFromInt(25), Amount: decimal.NewFromInt(250)},
		},
	}
}

func TestVoucherService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().CreateVoucher(ctx, validPayload()).Return(models.MutationResult{Success: true, RemoteID: "42"}, nil)

		res := f.svc.Create(ctx, validPayload())

		assert.True(t, res.Success)
		assert.False(t, res.Queued)
		assert.Equal(t, "42", res.RemoteID)
	})

	t.Run("invalid payload is not sent", func(t *testing.T) {
		f := newVoucherFixture(t)
		p := validPayload()
		p.CounterpartyName = ""

		res := f.svc.Create(ctx, p)

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, ErrInvalidPayload.Error())
	})

	t.Run("offline remote queues voucher", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().CreateVoucher(ctx, gomock.Any()).Return(models.MutationResult{}, offline)
		f.pending.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p models.PendingVoucher) error {
			assert.Equal(t, "pending-1", p.ID)
			assert.Equal(t, validPayload().Kind, p.Payload.Kind)
			assert.NotEmpty(t, p.LastError)
			return nil
		})

		res := f.svc.Create(ctx, validPayload())

		assert.True(t, res.Success)
		assert.True(t, res.Queued)
		assert.Equal(t, "pending-1", res.PendingID)
	})

	t.Run("rejected by remote is not queued", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().CreateVoucher(ctx, gomock.Any()).Return(models.MutationResult{}, adapter.ErrRemoteRejected)

		res := f.svc.Create(ctx, validPayload())

		assert.False(t, res.Success)
		assert.False(t, res.Queued)
	})

	t.Run("unconfirmed write", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().CreateVoucher(ctx, gomock.Any()).Return(models.MutationResult{Error: "Voucher totals do not match!"}, nil)

		res := f.svc.Create(ctx, validPayload())

		assert.False(t, res.Success)
		assert.Equal(t, "Voucher totals do not match!", res.Error)
	})
}

func TestVoucherService_Update(t *testing.T) {
	ctx := context.Background()
	p := validPayload()
	p.GlobalID, p.RemoteID = "G1", "17"

	t.Run("replaces line items and notifies", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().UpdateVoucher(ctx, p).Return(models.MutationResult{Success: true, RemoteID: "17"}, nil)
		f.vouchers.EXPECT().ReplaceLineItems(ctx, "G1", p.LineItems).Return(nil)
		f.notifier.EXPECT().Publish(ctx, models.EventVoucherUpdated, gomock.Any())

		res := f.svc.Update(ctx, p)

		assert.True(t, res.Success)
		assert.Equal(t, "17", res.RemoteID)
	})

	t.Run("remote id is required", func(t *testing.T) {
		f := newVoucherFixture(t)
		noRemote := p
		noRemote.RemoteID = ""

		res := f.svc.Update(ctx, noRemote)

		assert.False(t, res.Success)
	})

	t.Run("remote failure leaves cache untouched", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.adapter.EXPECT().UpdateVoucher(ctx, p).Return(models.MutationResult{}, offline)

		res := f.svc.Update(ctx, p)

		assert.False(t, res.Success)
		assert.False(t, res.Queued)
	})
}

func TestVoucherService_Delete(t *testing.T) {
	ctx := context.Background()
	cached := models.Voucher{GlobalID: "G1", RemoteID: "17", Kind: "Sales"}

	t.Run("soft deletes after remote confirms", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "G1").Return(cached, nil)
		f.adapter.EXPECT().DeleteVoucher(ctx, "17").Return(models.MutationResult{Success: true}, nil)
		f.vouchers.EXPECT().MarkDeleted(ctx, []string{"G1"}, ReasonDeletedLocally).Return(models.BatchResult{Requested: 1, Applied: 1}, nil)
		f.notifier.EXPECT().Publish(ctx, models.EventVoucherDeleted, models.DeletionEvent{GlobalIDs: []string{"G1"}, Reason: ReasonDeletedLocally})

		res := f.svc.Delete(ctx, "G1")

		assert.True(t, res.Success)
		assert.Equal(t, "17", res.RemoteID)
	})

	t.Run("unknown voucher", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "nope").Return(models.Voucher{}, store.ErrVoucherNotFound)

		res := f.svc.Delete(ctx, "nope")

		assert.False(t, res.Success)
		assert.Equal(t, ErrVoucherNotFound.Error(), res.Error)
	})

	t.Run("remote refusal keeps cache", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "G1").Return(cached, nil)
		f.adapter.EXPECT().DeleteVoucher(ctx, "17").Return(models.MutationResult{Error: "cannot delete"}, nil)

		res := f.svc.Delete(ctx, "G1")

		assert.False(t, res.Success)
		assert.Equal(t, "cannot delete", res.Error)
	})
}

func TestVoucherService_Detail(t *testing.T) {
	ctx := context.Background()
	items := validPayload().LineItems

	t.Run("cached line items", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "G1").Return(models.Voucher{GlobalID: "G1", LineItems: items}, nil)

		res := f.svc.Detail(ctx, "G1")

		require.True(t, res.Success)
		assert.Equal(t, items, res.Voucher.LineItems)
	})

	t.Run("fetches and caches line items", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "G1").Return(models.Voucher{GlobalID: "G1", RemoteID: "17"}, nil)
		f.adapter.EXPECT().FetchVoucherDetail(ctx, "17").Return(models.Voucher{GlobalID: "G1", LineItems: items}, nil)
		f.vouchers.EXPECT().ReplaceLineItems(ctx, "G1", items).Return(nil)

		res := f.svc.Detail(ctx, "G1")

		require.True(t, res.Success)
		assert.Len(t, res.Voucher.LineItems, 1)
	})

	t.Run("remote failure", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().GetVoucherByGlobalID(ctx, "G1").Return(models.Voucher{GlobalID: "G1", RemoteID: "17"}, nil)
		f.adapter.EXPECT().FetchVoucherDetail(ctx, "17").Return(models.Voucher{}, adapter.ErrNotFound)

		res := f.svc.Detail(ctx, "G1")

		assert.False(t, res.Success)
		assert.Nil(t, res.Voucher)
	})
}

func TestVoucherService_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("partial", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().PurgeDeleted(ctx, []string{"A", "B"}).
			Return(models.PurgeResult{Purged: 1, Failed: 1, Error: store.ErrNotSoftDeleted.Error()}, nil)

		res := f.svc.Purge(ctx, []string{"A", "B"})

		assert.False(t, res.Success)
		assert.Equal(t, 1, res.Purged)
		assert.Equal(t, 1, res.Failed)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := newVoucherFixture(t)
		f.vouchers.EXPECT().PurgeDeleted(ctx, []string{"A"}).Return(models.PurgeResult{}, errors.New("database is locked"))

		res := f.svc.Purge(ctx, []string{"A"})

		assert.False(t, res.Success)
		assert.Equal(t, "database is locked", res.Error)
	})
}
