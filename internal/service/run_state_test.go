// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/models"
)

func TestRunState_BeginIsSingleFlight(t *testing.T) {
	s := newRunState()

	require.True(t, s.begin(passIncremental))
	assert.False(t, s.begin(passRange))
	assert.Equal(t, models.SyncStatusSyncing, s.snapshot().Status)
	assert.True(t, s.snapshot().IsSyncing)

	s.finish("done", nil, time.Now())
	assert.True(t, s.begin(passRange))
}

func TestRunState_FinishWithError(t *testing.T) {
	s := newRunState()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.True(t, s.begin(passIncremental))
	s.finish("fetched 0", errors.New("boom"), at)

	snap := s.snapshot()
	assert.Equal(t, models.SyncStatusError, snap.Status)
	assert.Equal(t, "boom", snap.LastError)
	assert.False(t, snap.IsSyncing)
	require.NotNil(t, snap.LastRunAt)
	assert.Equal(t, at, *snap.LastRunAt)

	// успешный проход очищает ошибку
	require.True(t, s.begin(passIncremental))
	s.finish("fetched 1", nil, at)
	snap = s.snapshot()
	assert.Equal(t, models.SyncStatusIdle, snap.Status)
	assert.Empty(t, snap.LastError)
}

func TestRunState_FailAndRecover(t *testing.T) {
	s := newRunState()

	s.fail(errors.New("offline"))
	assert.Equal(t, models.SyncStatusError, s.snapshot().Status)

	s.recover()
	assert.Equal(t, models.SyncStatusIdle, s.snapshot().Status)
	assert.Empty(t, s.snapshot().LastError)
}

func TestRunState_FailDuringPassKeepsSyncing(t *testing.T) {
	s := newRunState()
	require.True(t, s.begin(passIncremental))

	s.fail(errors.New("offline"))
	s.recover()

	snap := s.snapshot()
	assert.Equal(t, models.SyncStatusSyncing, snap.Status)
	assert.Equal(t, "offline", snap.LastError)
}

func TestRunState_Restore(t *testing.T) {
	tests := []struct {
		name   string
		status models.SyncStatus
		want   models.SyncStatus
	}{
		{name: "error survives restart", status: models.SyncStatusError, want: models.SyncStatusError},
		{name: "interrupted pass becomes idle", status: models.SyncStatusSyncing, want: models.SyncStatusIdle},
		{name: "nothing persisted", status: "", want: models.SyncStatusIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newRunState()
			s.restore(tt.status, "last")

			snap := s.snapshot()
			assert.Equal(t, tt.want, snap.Status)
			assert.Equal(t, "last", snap.LastError)
			assert.False(t, snap.IsSyncing)
		})
	}
}
