package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"workation/infras/otel/mocks"
	sheetMocks "workation/infras/sheet/mocks"
	"workation/internal/domains/inquiry/model"
	"workation/internal/domains/inquiry/repository"
	settingsMocks "workation/internal/domains/settings/mocks"
	"workation/shared/cache"
	cacheMocks "workation/shared/cache/mocks"
)

func TestInquiryRepository_Append(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings, pushed *sync.WaitGroup)
		wantErr   bool
	}{
		{
			name: "appends locally and mirrors remotely",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings, pushed *sync.WaitGroup) {
				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(cache.Nil)

				kv.EXPECT().
					Save(gomock.Any(), model.StoreKey, gomock.Any(), 0).
					Return(nil)

				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("https://script.example.com/exec", nil)

				pushed.Add(1)
				mirror.EXPECT().
					Push(gomock.Any(), "https://script.example.com/exec", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ map[string]any) error {
						pushed.Done()
						return nil
					})
			},
		},
		{
			name: "mirror failure does not fail the append",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings, pushed *sync.WaitGroup) {
				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(cache.Nil)

				kv.EXPECT().
					Save(gomock.Any(), model.StoreKey, gomock.Any(), 0).
					Return(nil)

				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("https://script.example.com/exec", nil)

				pushed.Add(1)
				mirror.EXPECT().
					Push(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ map[string]any) error {
						pushed.Done()
						return errors.New("network unreachable")
					})
			},
		},
		{
			name: "no mirror configured stays local only",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings, pushed *sync.WaitGroup) {
				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(cache.Nil)

				kv.EXPECT().
					Save(gomock.Any(), model.StoreKey, gomock.Any(), 0).
					Return(nil)

				pushed.Add(1)
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					DoAndReturn(func(_ context.Context) (string, error) {
						pushed.Done()
						return "", nil
					})
			},
		},
		{
			name: "persist failure surfaces to the caller",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings, pushed *sync.WaitGroup) {
				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(cache.Nil)

				kv.EXPECT().
					Save(gomock.Any(), model.StoreKey, gomock.Any(), 0).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockKV := cacheMocks.NewMockKV(ctrl)
			mockMirror := sheetMocks.NewMockMirror(ctrl)
			mockSettings := settingsMocks.NewMockSettings(ctrl)
			mockOtel := mocks.NewOtel()

			var pushed sync.WaitGroup
			tt.setupMock(mockKV, mockMirror, mockSettings, &pushed)

			repo := repository.New(mockKV, mockMirror, mockSettings, mockOtel)

			err := repo.Append(context.Background(), model.Inquiry{
				ID:        1700000000000,
				Timestamp: "2026-08-30T09:00:00+09:00",
				Name:      "Kim Minji",
				Email:     "minji@example.com",
				Status:    model.StatusPending,
			})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			pushed.Wait()
		})
	}
}

func TestInquiryRepository_LoadAll(t *testing.T) {
	stored := []model.Inquiry{
		{
			ID:        1001,
			Timestamp: "2026-08-29T10:00:00+09:00",
			Name:      "Kim Minji",
			Status:    model.StatusPending,
		},
	}

	tests := []struct {
		name      string
		setupMock func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings)
		wantLen   int
		wantName  string
		wantErr   bool
	}{
		{
			name: "mirror configured reads remote copy",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("https://script.example.com/exec", nil)

				mirror.EXPECT().
					Fetch(gomock.Any(), "https://script.example.com/exec").
					Return([]map[string]any{
						{
							"id":        float64(2001),
							"timestamp": "2026-08-30T09:00:00+09:00",
							"name":      "Lee Jihoon",
						},
					}, nil)
			},
			wantLen:  1,
			wantName: "Lee Jihoon",
		},
		{
			name: "mirror failure falls back to local collection",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("https://script.example.com/exec", nil)

				mirror.EXPECT().
					Fetch(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("network unreachable"))

				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						records := value.(*[]model.Inquiry)
						*records = stored
						return nil
					})
			},
			wantLen:  1,
			wantName: "Kim Minji",
		},
		{
			name: "no mirror reads local collection",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", nil)

				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						records := value.(*[]model.Inquiry)
						*records = stored
						return nil
					})
			},
			wantLen:  1,
			wantName: "Kim Minji",
		},
		{
			name: "missing slot reads as empty collection",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", nil)

				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(cache.Nil)
			},
			wantLen: 0,
		},
		{
			name: "corrupt slot reads as empty collection",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", nil)

				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(&json.SyntaxError{Offset: 1})
			},
			wantLen: 0,
		},
		{
			name: "store connection error surfaces to the caller",
			setupMock: func(kv *cacheMocks.MockKV, mirror *sheetMocks.MockMirror, settings *settingsMocks.MockSettings) {
				settings.EXPECT().
					MirrorURL(gomock.Any()).
					Return("", nil)

				kv.EXPECT().
					Get(gomock.Any(), model.StoreKey, gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockKV := cacheMocks.NewMockKV(ctrl)
			mockMirror := sheetMocks.NewMockMirror(ctrl)
			mockSettings := settingsMocks.NewMockSettings(ctrl)
			mockOtel := mocks.NewOtel()

			tt.setupMock(mockKV, mockMirror, mockSettings)

			repo := repository.New(mockKV, mockMirror, mockSettings, mockOtel)

			records, err := repo.LoadAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, records, tt.wantLen)
			if tt.wantName != "" {
				assert.Equal(t, tt.wantName, records[0].Name)
			}
		})
	}
}
