package history_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/worker/history"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishSearchEvent(ctx context.Context, event domain.SearchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockHistoryRepository is a mock of HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveSearchEvent(ctx context.Context, event domain.SearchEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHistoryRepository) GetStatistics(ctx context.Context) (*domain.SearchStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SearchStatistics), args.Error(1)
}

func eventMessage(t *testing.T, id, requestID string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.SearchEvent{
		RequestID: requestID,
		Lat:       3.1408,
		Lon:       101.6932,
		Source:    domain.SourceOverpass,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestSearchHistoryWorker(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("saves and acks events until stream closes", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		historyRepo := &MockHistoryRepository{}

		ch := make(chan domain.StreamMessage, 2)
		ch <- eventMessage(t, "1-0", "req-1")
		ch <- eventMessage(t, "2-0", "req-2")
		close(ch)

		streamRepo.On("CreateConsumerGroup", ctx, domain.StreamSearchEvents, "test-group").Return(nil)
		streamRepo.On("ConsumeStream", ctx, domain.StreamSearchEvents, "test-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(ch), nil)
		streamRepo.On("AckMessage", ctx, domain.StreamSearchEvents, "test-group", "1-0").Return(nil)
		streamRepo.On("AckMessage", ctx, domain.StreamSearchEvents, "test-group", "2-0").Return(nil)
		historyRepo.On("SaveSearchEvent", ctx, mock.Anything).Return(nil).Twice()

		w := history.NewSearchHistoryWorker(streamRepo, historyRepo, "test-group", 3, logger)
		require.NoError(t, w.Start(ctx))

		streamRepo.AssertExpectations(t)
		historyRepo.AssertExpectations(t)
	})

	t.Run("acks malformed message without saving", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		historyRepo := &MockHistoryRepository{}

		ch := make(chan domain.StreamMessage, 1)
		ch <- domain.StreamMessage{ID: "9-0", Data: "not json"}
		close(ch)

		streamRepo.On("CreateConsumerGroup", ctx, domain.StreamSearchEvents, "test-group").Return(nil)
		streamRepo.On("ConsumeStream", ctx, domain.StreamSearchEvents, "test-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(ch), nil)
		streamRepo.On("AckMessage", ctx, domain.StreamSearchEvents, "test-group", "9-0").Return(nil)

		w := history.NewSearchHistoryWorker(streamRepo, historyRepo, "test-group", 3, logger)
		require.NoError(t, w.Start(ctx))

		historyRepo.AssertNotCalled(t, "SaveSearchEvent", mock.Anything, mock.Anything)
		streamRepo.AssertExpectations(t)
	})

	t.Run("does not ack after exhausting retries", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		historyRepo := &MockHistoryRepository{}

		ch := make(chan domain.StreamMessage, 1)
		ch <- eventMessage(t, "5-0", "req-5")
		close(ch)

		streamRepo.On("CreateConsumerGroup", ctx, domain.StreamSearchEvents, "test-group").Return(nil)
		streamRepo.On("ConsumeStream", ctx, domain.StreamSearchEvents, "test-group", mock.Anything).
			Return((<-chan domain.StreamMessage)(ch), nil)
		historyRepo.On("SaveSearchEvent", ctx, mock.Anything).Return(assert.AnError)

		w := history.NewSearchHistoryWorker(streamRepo, historyRepo, "test-group", 1, logger)
		require.NoError(t, w.Start(ctx))

		streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		historyRepo.AssertNumberOfCalls(t, "SaveSearchEvent", 1)
	})

	t.Run("create consumer group failure stops the worker", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		historyRepo := &MockHistoryRepository{}

		streamRepo.On("CreateConsumerGroup", ctx, domain.StreamSearchEvents, "test-group").
			Return(assert.AnError)

		w := history.NewSearchHistoryWorker(streamRepo, historyRepo, "test-group", 3, logger)
		err := w.Start(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create consumer group")
	})
}
