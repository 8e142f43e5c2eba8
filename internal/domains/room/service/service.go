package service

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/s3"
	"lodge/internal/domains/room/model"
	"lodge/internal/domains/room/model/dto"
	"lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/dataport"
	"lodge/shared/failure"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const photoDirectory = "rooms"

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dataport.Record, error)
	Get(ctx context.Context, id int64) (dataport.Record, error)
	GetAll(ctx context.Context) ([]dataport.Record, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (dataport.Record, error)
	Delete(ctx context.Context, id int64) (dataport.Record, error)
	AttachPhoto(ctx context.Context, id int64, file multipart.File, fileHeader *multipart.FileHeader) (dataport.Record, error)
}

type serviceImpl struct {
	repo    repository.Room
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Room, storage s3.S3, otel otel.Otel) Room {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	created, err := s.repo.Create(ctx, req.ToRecord())
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

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

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, id int64) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRoomRequest{}) {
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

// AttachPhoto uploads a room photo to object storage and persists its public
// URL on the room record.
func (s *serviceImpl) AttachPhoto(ctx context.Context, id int64, file multipart.File, fileHeader *multipart.FileHeader) (rec dataport.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AttachPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.repo.ReadByID(ctx, id); err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room for photo upload")

		return nil, err
	}

	fileName := fmt.Sprintf("%d-%s%s", id, uuid.NewString(), path.Ext(fileHeader.Filename))

	url, err := s.storage.UploadFile(ctx, photoDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room photo")

		return nil, fmt.Errorf("failed to upload room photo: %w", err)
	}

	updated, err := s.repo.Update(ctx, id, dataport.Record{model.FieldPhotoURL: url})
	if err != nil {
		log.Error().Err(err).Msg("failed to save room photo url")

		return nil, err
	}

	return updated, nil
}
