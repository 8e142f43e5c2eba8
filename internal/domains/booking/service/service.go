package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dataport"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const hoursPerDay = 24

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dataport.Record, error)
	Get(ctx context.Context, id int64) (dataport.Record, error)
	GetAll(ctx context.Context) ([]dataport.Record, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (dataport.Record, error)
	Delete(ctx context.Context, id int64) (dataport.Record, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	otel     otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otel:     otel,
	}
}

// Create derives the booking price from the room's nightly rate and the
// length of the stay, then persists the booking. Nothing is written when the
// date range is invalid or the room does not exist.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.roomRepo.ReadByID(ctx, req.RoomID)
	if err != nil {
		log.Error().Err(err).Int64("room_id", req.RoomID).Msg("failed to get room for booking")

		return nil, err
	}

	from, to, err := req.Dates()
	if err != nil {
		return nil, failure.BadRequest(fmt.Errorf("invalid date format: %w", err)) //nolint:wrapcheck
	}

	days := int(to.Sub(from).Hours() / hoursPerDay)
	if days <= 0 {
		return nil, failure.InvalidBookingDates //nolint:wrapcheck
	}

	price := dataport.Number(room, roomModel.FieldPrice) * float64(days)

	created, err := s.repo.Create(ctx, req.ToRecord(from, to, price))
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return nil, err
	}

	return created, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.ReadByID(ctx, id) //nolint:wrapcheck
}

func (s *serviceImpl) GetAll(ctx context.Context) (recs []dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.ReadAll(ctx) //nolint:wrapcheck
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id int64) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return nil, failure.EmptyUpdateRequest //nolint:wrapcheck
	}

	return s.repo.Update(ctx, id, shared.UpdateFields(req)) //nolint:wrapcheck
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.repo.Delete(ctx, id) //nolint:wrapcheck
}
