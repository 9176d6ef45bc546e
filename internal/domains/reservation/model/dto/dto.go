package dto

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	gModel "github.com/Ha-r-i/Picolo-Cafe-Website/shared/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/timezone"
)

type CreateReservationRequest struct {
	Name            string `json:"name"             validate:"required,max=100"`
	Phone           string `json:"phone"            validate:"required,max=20"`
	Email           string `json:"email"            validate:"required,email,max=100"`
	Date            string `json:"date"             validate:"required"`
	Time            string `json:"time"             validate:"required"`
	Guests          string `json:"guests"           validate:"omitempty"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// GuestCount coerces the free-form guests field into a bounded count.
// Unparseable or zero values fall back to the default party size.
func (c *CreateReservationRequest) GuestCount() int {
	guests, err := strconv.Atoi(c.Guests)
	if err != nil || guests == 0 {
		guests = model.DefaultGuests
	}

	if guests < model.MinGuests {
		guests = model.MinGuests
	}
	if guests > model.MaxGuests {
		guests = model.MaxGuests
	}

	return guests
}

// ToModel always produces a pending reservation, whatever the caller sent.
func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	return model.Reservation{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Phone:           c.Phone,
		Email:           c.Email,
		Date:            c.Date,
		Time:            c.Time,
		Guests:          c.GuestCount(),
		SpecialRequests: c.SpecialRequests,
		Status:          model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}

type ReservationResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"special_requests"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.Date = model.Date
	r.Time = model.Time
	r.Guests = model.Guests
	r.SpecialRequests = model.SpecialRequests
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
