package eventing

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-automation-api/infrastructure/repository/mocks"
	"github.com/vfg2006/marketing-automation-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newEventService(t *testing.T) (*Service, *mocks.MockEventRepository) {
	ctrl := gomock.NewController(t)
	eventRepo := mocks.NewMockEventRepository(ctrl)

	return NewService(eventRepo), eventRepo
}

func TestPublish(t *testing.T) {
	service, eventRepo := newEventService(t)

	customerID := int64(100)

	eventRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(event *domain.MarketingEvent) (*domain.MarketingEvent, error) {
			assert.Equal(t, domain.EventCustomerRegistered, event.EventType)
			assert.Equal(t, "api", event.EventSource)
			event.ID = 33
			return event, nil
		})

	event, err := service.Publish(&PublishRequest{
		EventType:   domain.EventCustomerRegistered,
		EventSource: "api",
		Payload:     json.RawMessage(`{"channel": "site"}`),
		CustomerID:  &customerID,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(33), event.ID)
}

func TestPublishWithoutType(t *testing.T) {
	service, _ := newEventService(t)

	_, err := service.Publish(&PublishRequest{EventSource: "api"})

	assert.ErrorIs(t, err, ErrEventTypeMissing)
}

func TestPublishBatchStopsOnError(t *testing.T) {
	service, eventRepo := newEventService(t)

	eventRepo.EXPECT().
		Insert(gomock.Any()).
		Return(&domain.MarketingEvent{ID: 1}, nil)

	events, err := service.PublishBatch([]*PublishRequest{
		{EventType: domain.EventCustomerRegistered},
		{EventType: ""},
	})

	assert.ErrorIs(t, err, ErrEventTypeMissing)
	assert.Len(t, events, 1)
}

func TestProcessPending(t *testing.T) {
	service, eventRepo := newEventService(t)

	handled := make([]int64, 0, 2)

	service.Register(domain.EventCustomerPurchase, func(_ context.Context, event *domain.MarketingEvent) error {
		handled = append(handled, event.ID)
		return nil
	})
	service.Register(domain.EventCustomerUnsubscribed, func(_ context.Context, _ *domain.MarketingEvent) error {
		return errors.New("segment sync unavailable")
	})

	pending := []*domain.MarketingEvent{
		{ID: 1, EventType: domain.EventCustomerPurchase},
		{ID: 2, EventType: domain.EventCustomerUnsubscribed},
		{ID: 3, EventType: "UNKNOWN_EVENT"},
	}

	eventRepo.EXPECT().ListUnprocessed(uint64(50)).Return(pending, nil)

	// O log é um diário: todo evento varrido é marcado como processado,
	// inclusive o que falhou no handler e o sem handler registrado
	eventRepo.EXPECT().MarkProcessed(int64(1)).Return(nil)
	eventRepo.EXPECT().MarkProcessed(int64(2)).Return(nil)
	eventRepo.EXPECT().MarkProcessed(int64(3)).Return(nil)

	summary, err := service.ProcessPending(context.Background(), 50)

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Processed)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, []int64{1}, handled)
}

func TestProcessPendingMarkFailure(t *testing.T) {
	service, eventRepo := newEventService(t)

	pending := []*domain.MarketingEvent{{ID: 1, EventType: "UNKNOWN_EVENT"}}

	eventRepo.EXPECT().ListUnprocessed(uint64(10)).Return(pending, nil)
	eventRepo.EXPECT().MarkProcessed(int64(1)).Return(assert.AnError)

	summary, err := service.ProcessPending(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Processed)
	assert.Equal(t, 1, summary.Errors)
}
