package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/customer/model/dto"
	"lodge/internal/domains/customer/service"
	"lodge/shared/dataport"
	portMocks "lodge/shared/dataport/mocks"
	"lodge/shared/failure"
)

func TestCustomerService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	req := dto.CreateCustomerRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	}

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data dataport.Record) (dataport.Record, error) {
			assert.Equal(t, "Ada", data["first_name"])
			assert.Equal(t, "Lovelace", data["last_name"])
			assert.Equal(t, "ada@example.com", data["email_address"])

			created := dataport.Record{"id": int64(1)}
			for k, v := range data {
				created[k] = v
			}

			return created, nil
		})

	created, err := svc.Create(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), dataport.ID(created))
}

func TestCustomerService_CreateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	errConflict := failure.Conflict("email_address already exists")

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errConflict)

	created, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		EmailAddress: "ada@example.com",
	})

	assert.ErrorIs(t, err, errConflict)
	assert.Nil(t, created)
}

func TestCustomerService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	customer := dataport.Record{"id": int64(2), "first_name": "Ada"}

	mockRepo.EXPECT().
		ReadByID(gomock.Any(), int64(2)).
		Return(customer, nil)

	got, err := svc.Get(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, customer, got)
}

func TestCustomerService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	mockRepo.EXPECT().
		ReadAll(gomock.Any()).
		Return([]dataport.Record{}, nil)

	got, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestCustomerService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	_, err := svc.Update(context.Background(), dto.UpdateCustomerRequest{}, 2)

	assert.ErrorIs(t, err, failure.EmptyUpdateRequest)

	mockRepo.EXPECT().
		Update(gomock.Any(), int64(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, data dataport.Record) (dataport.Record, error) {
			assert.Equal(t, dataport.Record{"email_address": "countess@example.com"}, data)

			return dataport.Record{"id": int64(2), "email_address": "countess@example.com"}, nil
		})

	updated, err := svc.Update(context.Background(), dto.UpdateCustomerRequest{EmailAddress: "countess@example.com"}, 2)

	assert.NoError(t, err)
	assert.Equal(t, "countess@example.com", updated["email_address"])
}

func TestCustomerService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := portMocks.NewMockPort(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockOtel)

	mockRepo.EXPECT().
		Delete(gomock.Any(), int64(9)).
		Return(dataport.Record{"id": int64(9)}, nil)

	deleted, err := svc.Delete(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), dataport.ID(deleted))
}
