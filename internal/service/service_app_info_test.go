package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/mirror-gallery/internal/config"
	"github.com/MKhiriev/mirror-gallery/internal/logger"
	"github.com/MKhiriev/mirror-gallery/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		build   models.AppBuildInfo
		want    string
		wantErr error
	}{
		{
			name:  "configured version",
			cfg:   config.App{Version: "1.0.0"},
			build: models.NewAppBuildInfo("", "", ""),
			want:  "1.0.0",
		},
		{
			name:  "linked version wins",
			cfg:   config.App{Version: "dev"},
			build: models.NewAppBuildInfo("2.5.1", "2026-10-01", "abc123"),
			want:  "2.5.1",
		},
		{
			name:  "linked version without config",
			cfg:   config.App{},
			build: models.NewAppBuildInfo("3.0.0", "", ""),
			want:  "3.0.0",
		},
		{
			name:    "no version anywhere",
			cfg:     config.App{},
			build:   models.NewAppBuildInfo("", "", ""),
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.build, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, svc)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_IndependentInstances(t *testing.T) {
	none := models.NewAppBuildInfo("", "", "")

	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, none, logger.Nop())
	require.NoError(t, err)
	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, none, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}
