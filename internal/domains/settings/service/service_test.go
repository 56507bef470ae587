package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"workation/infras/otel/mocks"
	settingsMocks "workation/internal/domains/settings/mocks"
	"workation/internal/domains/settings/model/dto"
	"workation/internal/domains/settings/service"
)

func TestSettingsService_GetMirrorSettings(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(repo *settingsMocks.MockSettings)
		wantErr     bool
		wantURL     string
		wantEnabled bool
	}{
		{
			name: "mirror configured",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					MirrorURL(gomock.Any()).
					Return("https://script.example.com/exec", nil)
			},
			wantURL:     "https://script.example.com/exec",
			wantEnabled: true,
		},
		{
			name: "local only",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", nil)
			},
		},
		{
			name: "store error",
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := settingsMocks.NewMockSettings(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			res, err := svc.GetMirrorSettings(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
			assert.Equal(t, tt.wantEnabled, res.Enabled)
		})
	}
}

func TestSettingsService_UpdateMirrorSettings(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateMirrorSettingsRequest
		setupMock func(repo *settingsMocks.MockSettings)
		wantErr   bool
	}{
		{
			name: "saves new endpoint",
			req:  dto.UpdateMirrorSettingsRequest{URL: "https://script.example.com/exec"},
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					SaveMirrorURL(gomock.Any(), "https://script.example.com/exec").
					Return(nil)
			},
		},
		{
			name: "empty URL disables mirroring",
			req:  dto.UpdateMirrorSettingsRequest{URL: ""},
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					SaveMirrorURL(gomock.Any(), "").
					Return(nil)
			},
		},
		{
			name: "store error",
			req:  dto.UpdateMirrorSettingsRequest{URL: "https://script.example.com/exec"},
			setupMock: func(repo *settingsMocks.MockSettings) {
				repo.EXPECT().
					SaveMirrorURL(gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := settingsMocks.NewMockSettings(ctrl)
			tt.setupMock(mockRepo)

			svc := service.New(mockRepo, mocks.NewOtel())

			err := svc.UpdateMirrorSettings(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}
