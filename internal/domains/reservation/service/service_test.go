package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/emailjs"
	emailMocks "github.com/Ha-r-i/Picolo-Cafe-Website/infras/emailjs/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel/mocks"
	reservationMocks "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/mocks"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/service"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockMailer := emailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMailer, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				Name:   "Ananya Rao",
				Phone:  "+91 98765 43210",
				Email:  "ananya@example.com",
				Date:   "2025-10-02",
				Time:   "07:00 PM",
				Guests: "4",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown time slot is rejected",
			req: dto.CreateReservationRequest{
				Name:  "Ananya Rao",
				Phone: "+91 98765 43210",
				Email: "ananya@example.com",
				Date:  "2025-10-02",
				Time:  "03:17 AM",
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository error maps to unavailable",
			req: dto.CreateReservationRequest{
				Name:  "Ananya Rao",
				Phone: "+91 98765 43210",
				Email: "ananya@example.com",
				Date:  "2025-10-02",
				Time:  "07:00 PM",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
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

func TestReservationService_Create_ForcesPendingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockMailer := emailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMailer, cfg, mockOtel)

	var inserted model.Reservation

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resv model.Reservation) error {
			inserted = resv

			return nil
		})

	err := svc.Create(context.Background(), dto.CreateReservationRequest{
		Name:   "Vikram Iyer",
		Phone:  "+91 90000 11111",
		Email:  "vikram@example.com",
		Date:   "2025-10-02",
		Time:   "12:30 PM",
		Guests: "not-a-number",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusPending, inserted.Status)
	assert.Equal(t, model.DefaultGuests, inserted.Guests)
	assert.NotEmpty(t, inserted.ID)
}

func TestReservationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockMailer := emailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMailer, cfg, mockOtel)

	reservations := []model.Reservation{
		{ID: "resv-1", Name: "Ananya Rao", Email: "ananya@example.com", Date: "2025-10-02", Status: model.StatusPending},
		{ID: "resv-2", Name: "Vikram Iyer", Email: "vikram@example.com", Date: "2025-10-05", Status: model.StatusConfirmed},
	}

	tests := []struct {
		name      string
		search    string
		status    string
		setupMock func()
		wantErr   bool
		wantIDs   []string
	}{
		{
			name:   "returns every reservation newest date first",
			status: model.StatusAll,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(reservations, nil)
			},
			wantIDs: []string{"resv-2", "resv-1"},
		},
		{
			name:   "filters by search term",
			search: "vikram",
			status: model.StatusAll,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(reservations, nil)
			},
			wantIDs: []string{"resv-2"},
		},
		{
			name:   "filters by status",
			status: model.StatusPending,
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(reservations, nil)
			},
			wantIDs: []string{"resv-1"},
		},
		{
			name: "repository error maps to unavailable",
			setupMock: func() {
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

			res, err := svc.GetAll(context.Background(), tt.search, tt.status)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, len(tt.wantIDs), res.TotalData)

			gotIDs := make([]string, len(res.Reservations))
			for i, resv := range res.Reservations {
				gotIDs[i] = resv.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockMailer := emailMocks.NewMockMailer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockMailer, cfg, mockOtel)

	stored := model.Reservation{
		ID:     "resv-1",
		Name:   "Ananya Rao",
		Email:  "ananya@example.com",
		Date:   "2025-10-02",
		Time:   "19:00",
		Guests: 4,
		Status: model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationStatusRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful update sends notification",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					SendReservationStatus(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error maps to unavailable",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name: "email failure after persisted update maps to bad gateway",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusCancelled},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					SendReservationStatus(gomock.Any(), gomock.Any()).
					Return(errors.New("emailjs rejected the request"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "missing email configuration after persisted update maps to internal error",
			req:  dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockMailer.EXPECT().
					SendReservationStatus(gomock.Any(), gomock.Any()).
					Return(emailjs.ErrNotConfigured)
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.UpdateStatus(ctx, tt.req, "resv-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
