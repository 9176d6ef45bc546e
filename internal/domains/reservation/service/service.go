package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/emailjs"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/repository"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) error
	GetAll(ctx context.Context, search, status string) (dto.GetReservationsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) error
}

type serviceImpl struct {
	repo   repository.Reservation
	mailer emailjs.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(repo repository.Reservation, mailer emailjs.Mailer, cfg *config.Config, otel otel.Otel) Reservation {
	return &serviceImpl{
		repo:   repo,
		mailer: mailer,
		cfg:    cfg,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !model.IsValidTimeSlot(req.Time) {
		return failure.BadRequestFromString("time must be one of the available reservation slots") // nolint:wrapcheck
	}

	reservation := req.ToModel(user)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return failure.Unavailable("unable to save reservation, please try again later") // nolint:wrapcheck
	}

	return nil
}

// GetAll is never cached. An admin who just changed a status expects the
// next listing to show it.
func (s *serviceImpl) GetAll(ctx context.Context, search, status string) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: constant.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, failure.Unavailable("unable to load reservations, please try again later") // nolint:wrapcheck
	}

	models = Visible(models, search, status)
	res.FromModels(models, len(models), 0)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return failure.Unavailable("unable to load reservation, please try again later") // nolint:wrapcheck
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return failure.Unavailable("unable to update reservation, please try again later") // nolint:wrapcheck
	}

	// The status change is already persisted at this point. A failed
	// notification must not roll it back, so it maps to its own error.
	err = s.mailer.SendReservationStatus(ctx, emailjs.ReservationEmailParams{
		Name:   reservation.Name,
		Email:  reservation.Email,
		Date:   reservation.Date,
		Time:   reservation.Time,
		Guests: strconv.Itoa(reservation.Guests),
		Status: req.Status,
	})
	if err != nil {
		log.Error().Err(err).Str("reservationID", id).Msg("reservation status updated but notification email failed")

		if errors.Is(err, emailjs.ErrNotConfigured) {
			return failure.InternalError(errors.New("reservation status updated, but email notifications are not configured: emailjs service, template, and public key are required")) // nolint:wrapcheck
		}

		return failure.BadGateway("reservation status updated, but the notification email could not be sent") // nolint:wrapcheck
	}

	return nil
}
