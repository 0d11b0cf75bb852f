// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/logger"
)

func TestSyncState_GetSet(t *testing.T) {
	repo := NewSyncStateRepository(newSQLiteDB(t), logger.Nop())
	ctx := context.Background()

	_, found, err := repo.GetState(ctx, "status")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetState(ctx, "status", "error"))
	require.NoError(t, repo.SetState(ctx, "status", "idle"))

	value, found, err := repo.GetState(ctx, "status")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "idle", value)
}

func TestSyncState_WriteError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncStateRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO sync_state").WillReturnError(errors.New("read-only"))

	err := repo.SetState(context.Background(), "status", "idle")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
