package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/Ha-r-i/Picolo-Cafe-Website/config"
	"github.com/Ha-r-i/Picolo-Cafe-Website/infras/otel"
	"github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/dashboard/model/dto"
	menuRepo "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/menu/repository"
	reservationModel "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/model"
	reservationRepo "github.com/Ha-r-i/Picolo-Cafe-Website/internal/domains/reservation/repository"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/constant"
	gDto "github.com/Ha-r-i/Picolo-Cafe-Website/shared/dto"
	"github.com/Ha-r-i/Picolo-Cafe-Website/shared/failure"
)

type Dashboard interface {
	GetStats(ctx context.Context) (dto.DashboardStatsResponse, error)
}

type serviceImpl struct {
	reservationRepo reservationRepo.Reservation
	menuRepo        menuRepo.Menu
	cfg             *config.Config
	otel            otel.Otel
}

func New(reservationRepo reservationRepo.Reservation, menuRepo menuRepo.Menu, cfg *config.Config, otel otel.Otel) Dashboard {
	return &serviceImpl{
		reservationRepo: reservationRepo,
		menuRepo:        menuRepo,
		cfg:             cfg,
		otel:            otel,
	}
}

// GetStats fetches the counters concurrently. The fetches are independent
// and only combined once every one of them has resolved.
func (s *serviceImpl) GetStats(ctx context.Context) (res dto.DashboardStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		total, countErr := s.reservationRepo.Count(groupCtx, gDto.FilterGroup{})
		if countErr != nil {
			return countErr
		}

		res.TotalBookings = total

		return nil
	})

	group.Go(func() error {
		pendingFilter := gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    reservationModel.FieldStatus,
					Value:    reservationModel.StatusPending,
					Operator: gDto.FilterOperatorEq,
					Table:    reservationModel.TableName,
				},
			},
		}

		pending, countErr := s.reservationRepo.Count(groupCtx, pendingFilter)
		if countErr != nil {
			return countErr
		}

		res.PendingBookings = pending

		return nil
	})

	group.Go(func() error {
		items, countErr := s.menuRepo.Count(groupCtx, gDto.FilterGroup{})
		if countErr != nil {
			return countErr
		}

		res.TotalMenuItems = items

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to load dashboard stats")

		return dto.DashboardStatsResponse{}, failure.Unavailable("unable to load dashboard stats, please try again later") // nolint:wrapcheck
	}

	return res, nil
}
