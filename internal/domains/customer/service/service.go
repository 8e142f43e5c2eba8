package service

import (
	"context"
	"lodge/infras/otel"
	"lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/customer/repository"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dataport"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

// Customer is pure pass-through CRUD; every operation forwards to the data
// access port and returns its result unchanged.
type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dataport.Record, error)
	Get(ctx context.Context, id int64) (dataport.Record, error)
	GetAll(ctx context.Context) ([]dataport.Record, error)
	Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (dataport.Record, error)
	Delete(ctx context.Context, id int64) (dataport.Record, error)
}

type serviceImpl struct {
	repo repository.Customer
	otel otel.Otel
}

func New(repo repository.Customer, otel otel.Otel) Customer {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	created, err := s.repo.Create(ctx, req.ToRecord())
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

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

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCustomerRequest, id int64) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCustomerRequest{}) {
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
