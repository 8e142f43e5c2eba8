package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	"lodge/shared/dataport"
	portMocks "lodge/shared/dataport/mocks"
	"lodge/shared/failure"
)

func TestBookingService_Create(t *testing.T) {
	room := dataport.Record{
		"id":        int64(7),
		"number":    int64(101),
		"price":     float64(100),
		"photo_url": "",
	}

	errRoomNotFound := failure.NotFound("room")

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(repo, roomRepo *portMocks.MockPort)
		wantPrice float64
		wantErr   error
	}{
		{
			name: "three nights at 100 per night",
			req: dto.CreateBookingRequest{
				FromDate:   "2026-02-01",
				ToDate:     "2026-02-04",
				CustomerID: 1,
				RoomID:     7,
			},
			setupMock: func(repo, roomRepo *portMocks.MockPort) {
				roomRepo.EXPECT().
					ReadByID(gomock.Any(), int64(7)).
					Return(room, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data dataport.Record) (dataport.Record, error) {
						created := dataport.Record{"id": int64(1)}
						for k, v := range data {
							created[k] = v
						}

						return created, nil
					})
			},
			wantPrice: 300,
		},
		{
			name: "single night",
			req: dto.CreateBookingRequest{
				FromDate:   "2026-02-01",
				ToDate:     "2026-02-02",
				CustomerID: 1,
				RoomID:     7,
			},
			setupMock: func(repo, roomRepo *portMocks.MockPort) {
				roomRepo.EXPECT().
					ReadByID(gomock.Any(), int64(7)).
					Return(room, nil)

				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data dataport.Record) (dataport.Record, error) {
						return data, nil
					})
			},
			wantPrice: 100,
		},
		{
			name: "same day stay is rejected",
			req: dto.CreateBookingRequest{
				FromDate:   "2026-02-01",
				ToDate:     "2026-02-01",
				CustomerID: 1,
				RoomID:     7,
			},
			setupMock: func(repo, roomRepo *portMocks.MockPort) {
				roomRepo.EXPECT().
					ReadByID(gomock.Any(), int64(7)).
					Return(room, nil)
			},
			wantErr: failure.InvalidBookingDates,
		},
		{
			name: "reversed range is rejected",
			req: dto.CreateBookingRequest{
				FromDate:   "2026-02-04",
				ToDate:     "2026-02-01",
				CustomerID: 1,
				RoomID:     7,
			},
			setupMock: func(repo, roomRepo *portMocks.MockPort) {
				roomRepo.EXPECT().
					ReadByID(gomock.Any(), int64(7)).
					Return(room, nil)
			},
			wantErr: failure.InvalidBookingDates,
		},
		{
			name: "absent room propagates not found",
			req: dto.CreateBookingRequest{
				FromDate:   "2026-02-01",
				ToDate:     "2026-02-04",
				CustomerID: 1,
				RoomID:     99,
			},
			setupMock: func(repo, roomRepo *portMocks.MockPort) {
				roomRepo.EXPECT().
					ReadByID(gomock.Any(), int64(99)).
					Return(nil, errRoomNotFound)
			},
			wantErr: errRoomNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := portMocks.NewMockPort(ctrl)
			mockRoomRepo := portMocks.NewMockPort(ctrl)
			mockOtel := mocks.NewOtel()

			tt.setupMock(mockRepo, mockRoomRepo)

			svc := service.New(mockRepo, mockRoomRepo, mockOtel)

			created, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, created)

				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, tt.wantPrice, dataport.Number(created, "price"), 0.0001)
			assert.Equal(t, tt.req.CustomerID, created["customer_id"])
			assert.Equal(t, tt.req.RoomID, created["room_id"])
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockRoomRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockOtel)

	booking := dataport.Record{"id": int64(3), "price": float64(250)}

	mockRepo.EXPECT().
		ReadByID(gomock.Any(), int64(3)).
		Return(booking, nil)

	got, err := svc.Get(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, booking, got)

	errNotFound := failure.NotFound("booking")

	mockRepo.EXPECT().
		ReadByID(gomock.Any(), int64(404)).
		Return(nil, errNotFound)

	_, err = svc.Get(context.Background(), 404)

	assert.ErrorIs(t, err, errNotFound)
	assert.True(t, failure.IsNotFound(err))
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockRoomRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockOtel)

	bookings := []dataport.Record{
		{"id": int64(1)},
		{"id": int64(2)},
	}

	mockRepo.EXPECT().
		ReadAll(gomock.Any()).
		Return(bookings, nil)

	got, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, bookings, got)
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockRoomRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockOtel)

	// Empty payloads never reach the repository.
	_, err := svc.Update(context.Background(), dto.UpdateBookingRequest{}, 1)

	assert.ErrorIs(t, err, failure.EmptyUpdateRequest)

	mockRepo.EXPECT().
		Update(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, data dataport.Record) (dataport.Record, error) {
			assert.Equal(t, "2026-03-01", data["from_date"])
			assert.NotContains(t, data, "to_date")
			assert.NotContains(t, data, "price")

			return dataport.Record{"id": int64(1), "from_date": "2026-03-01"}, nil
		})

	updated, err := svc.Update(context.Background(), dto.UpdateBookingRequest{FromDate: "2026-03-01"}, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), dataport.ID(updated))
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockRoomRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRoomRepo, mockOtel)

	mockRepo.EXPECT().
		Delete(gomock.Any(), int64(5)).
		Return(dataport.Record{"id": int64(5)}, nil)

	deleted, err := svc.Delete(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), dataport.ID(deleted))
}
