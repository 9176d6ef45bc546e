package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel/mocks"
	categoryMocks "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache"
	cacheMocks "github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

func TestCategoryService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	persisted := []model.Category{
		{ID: "cat-1", Value: "signatureKaapi", Label: "Signature Kaapi", SortOrder: 0},
		{ID: "cat-2", Value: "snacks", Label: "Snacks", SortOrder: 5},
	}

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantValues []string
	}{
		{
			name: "returns persisted categories",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(persisted, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantValues: []string{"signatureKaapi", "snacks"},
		},
		{
			name: "falls back to defaults when table is empty",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Category{}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantValues: []string{"signatureKaapi", "hotCoffee", "coldCoffee", "piccoKidsFavourites"},
		},
		{
			name: "repository error maps to unavailable",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)

			gotValues := make([]string, len(res.Categories))
			for i, cat := range res.Categories {
				gotValues[i] = cat.Value
			}
			assert.Equal(t, tt.wantValues, gotValues)
		})
	}
}

func TestCategoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateCategoryRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation defaults order",
			req:  dto.CreateCategoryRequest{Value: "desserts", Label: "Desserts"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, cat model.Category) error {
						assert.Equal(t, model.DefaultCreateOrder, cat.SortOrder)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate value conflicts",
			req:  dto.CreateCategoryRequest{Value: "hotCoffee", Label: "Hot Coffee"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategoryService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "category not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "cat-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
