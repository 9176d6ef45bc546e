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
	categoryModel "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/category/model"
	menuMocks "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache"
	cacheMocks "github.com/Ha-r-i/Picolo-Cafe-Website/shared/cache/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

func newMenuService(t *testing.T) (service.Menu, *menuMocks.MockMenu, *categoryMocks.MockCategory, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := menuMocks.NewMockMenu(ctrl)
	mockCategoryRepo := categoryMocks.NewMockCategory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCategoryRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCategoryRepo, mockCache
}

func TestMenuService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newMenuService(t)

	items := []model.MenuItem{
		{ID: "m-1", Name: "Cold Brew", Category: "coldCoffee"},
		{ID: "m-2", Name: "Filter Kaapi", Category: "signatureKaapi"},
		{ID: "m-3", Name: "Masala Chai", Category: ""},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(items, nil)

	res, err := svc.GetAll(context.Background(), "")

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)

	gotCategories := make([]string, len(res.Categories))
	for i, group := range res.Categories {
		gotCategories[i] = group.Category
	}

	assert.Equal(t, []string{"coldCoffee", categoryModel.FallbackValue, "signatureKaapi"}, gotCategories)
}

func TestMenuService_GetAll_RepositoryError(t *testing.T) {
	svc, mockRepo, _, mockCache := newMenuService(t)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.GetAll(context.Background(), "")

	assert.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestMenuService_GetBestSellers(t *testing.T) {
	svc, mockRepo, _, mockCache := newMenuService(t)

	items := []model.MenuItem{
		{ID: "m-1", Name: "Filter Kaapi", Category: "signatureKaapi", IsBestSeller: true},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(items, nil)

	res, err := svc.GetBestSellers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Filter Kaapi", res.Items[0].Name)
}

func TestMenuService_GetByID(t *testing.T) {
	svc, mockRepo, _, mockCache := newMenuService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MenuItem{ID: "m-1", Name: "Cold Brew"}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(cache.Nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MenuItem{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.GetByID(context.Background(), "m-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_Create(t *testing.T) {
	svc, mockRepo, mockCategoryRepo, mockCache := newMenuService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	tests := []struct {
		name      string
		req       dto.CreateMenuItemRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation with persisted category",
			req: dto.CreateMenuItemRequest{
				Name:     "Iced Mocha",
				Price:    "₹249",
				Category: "coldCoffee",
			},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]categoryModel.Category{{Value: "coldCoffee", Label: "Cold Coffee"}}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "default category accepted when table is empty",
			req: dto.CreateMenuItemRequest{
				Name:     "Filter Kaapi",
				Price:    "₹149",
				Category: "signatureKaapi",
			},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]categoryModel.Category{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unknown category rejected",
			req: dto.CreateMenuItemRequest{
				Name:     "Mystery Dish",
				Price:    "₹999",
				Category: "unknownCategory",
			},
			setupMock: func() {
				mockCategoryRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]categoryModel.Category{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
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

func TestMenuService_Update(t *testing.T) {
	svc, mockRepo, mockCategoryRepo, mockCache := newMenuService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	bestSeller := true

	tests := []struct {
		name      string
		req       dto.UpdateMenuItemRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update",
			req:  dto.UpdateMenuItemRequest{Price: "₹299", IsBestSeller: &bestSeller},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:      "empty update rejected",
			req:       dto.UpdateMenuItemRequest{},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "menu item not found",
			req:  dto.UpdateMenuItemRequest{Price: "₹299"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "category change validated",
			req:  dto.UpdateMenuItemRequest{Category: "unknownCategory"},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockCategoryRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]categoryModel.Category{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, "m-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMenuService_Delete(t *testing.T) {
	svc, mockRepo, _, mockCache := newMenuService(t)

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

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
		},
		{
			name: "menu item not found",
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

			err := svc.Delete(context.Background(), "m-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
