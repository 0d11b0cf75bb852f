// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voucher-sync/internal/config"
	"github.com/MKhiriev/voucher-sync/internal/logger"
	"github.com/MKhiriev/voucher-sync/models"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StructuredConfig
		dialect string
		wantErr error
		want    models.AppInfo
	}{
		{
			name: "full identity",
			cfg: config.StructuredConfig{
				App:     config.App{Version: "1.4.0", BuildDate: "2026-02-01", BuildCommit: "abc123"},
				Adapter: config.Adapter{Company: "Acme Traders"},
			},
			dialect: "pgx",
			want: models.AppInfo{
				Build:   models.AppBuildInfo{Version: "1.4.0", Date: "2026-02-01", Commit: "abc123"},
				Company: "Acme Traders",
				Storage: "pgx",
			},
		},
		{
			name:    "open company and no build stamp",
			cfg:     config.StructuredConfig{App: config.App{Version: "v1.2.3-beta+build.42"}},
			dialect: "sqlite3",
			want: models.AppInfo{
				Build:   models.AppBuildInfo{Version: "v1.2.3-beta+build.42"},
				Storage: "sqlite3",
			},
		},
		{
			name:    "missing version",
			cfg:     config.StructuredConfig{Adapter: config.Adapter{Company: "Acme Traders"}},
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.dialect, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			assert.Equal(t, tt.want, svc.GetAppInfo(ctx))
			assert.Equal(t, tt.want.Build.Version, svc.GetAppVersion(ctx))
		})
	}
}

func TestGetAppVersion_CancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.StructuredConfig{App: config.App{Version: "1.0.0"}}, "", logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// версия не зависит от контекста
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
