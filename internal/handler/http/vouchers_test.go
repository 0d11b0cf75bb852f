// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/service"
	"github.com/MKhiriev/voucher-sync/models"
)

func TestGetVoucher(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		rec := serve(newTestHandler(nil, nil), http.MethodGet, "/api/vouchers/G1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.VoucherResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Voucher)
		assert.Equal(t, "G1", resp.Voucher.GlobalID)
	})

	t.Run("not found", func(t *testing.T) {
		voucherSvc := &stubVoucherService{
			getFn: func(context.Context, string) (models.Voucher, error) {
				return models.Voucher{}, service.ErrVoucherNotFound
			},
		}

		rec := serve(newTestHandler(nil, voucherSvc), http.MethodGet, "/api/vouchers/nope", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateVoucher(t *testing.T) {
	tests := []struct {
		name   string
		result models.VoucherWriteResult
		want   int
	}{
		{name: "created", result: models.VoucherWriteResult{Success: true, RemoteID: "42"}, want: http.StatusCreated},
		{name: "queued", result: models.VoucherWriteResult{Success: true, Queued: true, PendingID: "p1"}, want: http.StatusAccepted},
		{name: "invalid", result: models.VoucherWriteResult{Error: service.ErrInvalidPayload.Error() + ": empty counterparty"}, want: http.StatusBadRequest},
		{name: "rejected", result: models.VoucherWriteResult{Error: "remote ledger rejected the request: totals differ"}, want: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.VoucherPayload
			voucherSvc := &stubVoucherService{
				createFn: func(_ context.Context, p models.VoucherPayload) models.VoucherWriteResult {
					got = p
					return tt.result
				},
			}

			rec := serve(newTestHandler(nil, voucherSvc), http.MethodPost, "/api/vouchers",
				`{"kind":"Sales","date":"2026-03-14T00:00:00Z","counterparty_name":"Acme","amount":"250.50"}`)

			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "Acme", got.CounterpartyName)
			assert.Equal(t, "250.5", got.Amount.String())
		})
	}
}

func TestCreateVoucher_UnknownField(t *testing.T) {
	rec := serve(newTestHandler(nil, nil), http.MethodPost, "/api/vouchers", `{"kind":"Sales","colour":"red"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteVoucher(t *testing.T) {
	var gotID string
	voucherSvc := &stubVoucherService{
		deleteFn: func(_ context.Context, id string) models.VoucherWriteResult {
			gotID = id
			return models.VoucherWriteResult{Success: true, RemoteID: "17"}
		},
	}

	rec := serve(newTestHandler(nil, voucherSvc), http.MethodDelete, "/api/vouchers/G1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "G1", gotID)
}

func TestPurgeVouchers(t *testing.T) {
	t.Run("partial purge is ok", func(t *testing.T) {
		voucherSvc := &stubVoucherService{
			purgeFn: func(_ context.Context, ids []string) models.PurgeResult {
				return models.PurgeResult{Purged: 1, Failed: 1, Error: "voucher is not soft-deleted"}
			},
		}

		rec := serve(newTestHandler(nil, voucherSvc), http.MethodPost, "/api/admin/vouchers/purge", `{"global_ids":["A","B"]}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty id list", func(t *testing.T) {
		rec := serve(newTestHandler(nil, nil), http.MethodPost, "/api/admin/vouchers/purge", `{"global_ids":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
