package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/dashboard/service"
	menuMocks "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/mocks"
	reservationModel "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	reservationMocks "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/mocks"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

func newDashboardService(t *testing.T) (service.Dashboard, *reservationMocks.MockReservation, *menuMocks.MockMenu) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockMenuRepo := menuMocks.NewMockMenu(ctrl)

	svc := service.New(mockReservationRepo, mockMenuRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockReservationRepo, mockMenuRepo
}

func TestDashboardService_GetStats(t *testing.T) {
	t.Run("combines all three counters", func(t *testing.T) {
		svc, mockReservationRepo, mockMenuRepo := newDashboardService(t)

		mockReservationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				if len(filter.Filters) == 0 {
					return 42, nil
				}

				first, _ := filter.Filters[0].(gDto.Filter)
				assert.Equal(t, reservationModel.FieldStatus, first.Field)
				assert.Equal(t, reservationModel.StatusPending, first.Value)

				return 7, nil
			}).
			Times(2)

		mockMenuRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(18, nil)

		res, err := svc.GetStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 42, res.TotalBookings)
		assert.Equal(t, 7, res.PendingBookings)
		assert.Equal(t, 18, res.TotalMenuItems)
	})

	t.Run("reservation counter failure surfaces as unavailable", func(t *testing.T) {
		svc, mockReservationRepo, mockMenuRepo := newDashboardService(t)

		mockReservationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("connection refused")).
			AnyTimes()

		mockMenuRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil).
			AnyTimes()

		_, err := svc.GetStats(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})

	t.Run("menu counter failure surfaces as unavailable", func(t *testing.T) {
		svc, mockReservationRepo, mockMenuRepo := newDashboardService(t)

		mockReservationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, nil).
			AnyTimes()

		mockMenuRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(0, errors.New("connection refused")).
			AnyTimes()

		_, err := svc.GetStats(context.Background())

		assert.Error(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
	})
}
