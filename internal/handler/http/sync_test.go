// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/service"
	"github.com/MKhiriev/voucher-sync/models"
)

func TestStartSync(t *testing.T) {
	t.Run("started", func(t *testing.T) {
		rec := serve(newTestHandler(nil, nil), http.MethodPost, "/api/sync/start", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var resp models.ControlResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Status)
		assert.True(t, resp.Status.IsRunning)
	})

	t.Run("remote offline", func(t *testing.T) {
		syncSvc := &stubSyncService{
			startFn: func(context.Context) bool { return false },
			statusFn: func(context.Context) models.SyncRunState {
				return models.SyncRunState{Status: models.SyncStatusError, LastError: service.ErrRemoteOffline.Error() + ": connection refused"}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/start", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		var resp models.ControlResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "connection refused")
	})
}

func TestStopSync(t *testing.T) {
	syncSvc := &stubSyncService{}

	rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/stop", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, syncSvc.stopped)
}

func TestRunIncremental_AlreadySyncing(t *testing.T) {
	syncSvc := &stubSyncService{
		incrementalFn: func(context.Context) models.SyncResult {
			return models.SyncResult{Error: service.ErrAlreadySyncing.Error()}
		},
	}

	rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/incremental", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "already syncing")
}

func TestRunRange(t *testing.T) {
	t.Run("parses dates", func(t *testing.T) {
		var gotFrom, gotTo time.Time
		syncSvc := &stubSyncService{
			rangeFn: func(_ context.Context, from, to time.Time) models.SyncResult {
				gotFrom, gotTo = from, to
				return models.SyncResult{Success: true, NewCount: 2}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/range", `{"from":"2026-01-01","to":"2026-01-31"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotFrom.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
		assert.True(t, gotTo.Equal(time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)))

		var res models.SyncResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, 2, res.NewCount)
	})

	t.Run("bad date", func(t *testing.T) {
		rec := serve(newTestHandler(nil, nil), http.MethodPost, "/api/sync/range", `{"from":"01/01/2026","to":"2026-01-31"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
	})

	t.Run("bad json", func(t *testing.T) {
		rec := serve(newTestHandler(nil, nil), http.MethodPost, "/api/sync/range", `{"from":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("inverted range", func(t *testing.T) {
		syncSvc := &stubSyncService{
			rangeFn: func(context.Context, time.Time, time.Time) models.SyncResult {
				return models.SyncResult{Error: service.ErrInvalidDateRange.Error() + ": from 2026-02-01 to 2026-01-01"}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/range", `{"from":"2026-02-01","to":"2026-01-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRunReconciliation_PassesKinds(t *testing.T) {
	var gotKinds []string
	syncSvc := &stubSyncService{
		reconcileFn: func(_ context.Context, kinds []string) models.ReconciliationResult {
			gotKinds = kinds
			return models.ReconciliationResult{Error: service.ErrEmptyRemoteSet.Error()}
		},
	}

	rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/reconcile", `{"kinds":["Sales","Receipt"]}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, []string{"Sales", "Receipt"}, gotKinds)
}

func TestRunFullHistory(t *testing.T) {
	t.Run("background by default", func(t *testing.T) {
		var gotStart *time.Time
		var gotBatch int
		syncSvc := &stubSyncService{
			startFullFn: func(_ context.Context, start *time.Time, batchDays int) models.FullHistoryResult {
				gotStart, gotBatch = start, batchDays
				return models.FullHistoryResult{Success: true, Started: true}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/full-history", `{"start_date":"2025-06-01","batch_days":14}`)

		assert.Equal(t, http.StatusAccepted, rec.Code)
		require.NotNil(t, gotStart)
		assert.True(t, gotStart.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, 14, gotBatch)
	})

	t.Run("wait runs inline", func(t *testing.T) {
		called := false
		syncSvc := &stubSyncService{
			fullFn: func(_ context.Context, start *time.Time, _ int) models.FullHistoryResult {
				called = true
				assert.Nil(t, start)
				return models.FullHistoryResult{Success: true, Resumed: true}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/full-history", `{"wait":true}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("already syncing", func(t *testing.T) {
		syncSvc := &stubSyncService{
			startFullFn: func(context.Context, *time.Time, int) models.FullHistoryResult {
				return models.FullHistoryResult{Error: service.ErrAlreadySyncing.Error()}
			},
		}

		rec := serve(newTestHandler(syncSvc, nil), http.MethodPost, "/api/sync/full-history", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCheckConnectivity_Offline(t *testing.T) {
	syncSvc := &stubSyncService{
		connFn: func(context.Context) models.Connectivity {
			return models.Connectivity{Error: "connection refused"}
		},
	}

	rec := serve(newTestHandler(syncSvc, nil), http.MethodGet, "/api/connectivity", "")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestSyncStatus(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	syncSvc := &stubSyncService{
		statusFn: func(context.Context) models.SyncRunState {
			return models.SyncRunState{IsRunning: true, Status: models.SyncStatusIdle, LastRunSummary: "incremental: fetched 3", LastRunAt: &at}
		},
	}

	rec := serve(newTestHandler(syncSvc, nil), http.MethodGet, "/api/sync/status", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var state models.SyncRunState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.True(t, state.IsRunning)
	assert.Equal(t, "incremental: fetched 3", state.LastRunSummary)
}
