package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/foodspot-microservice/internal/domain"
	"github.com/foodspot-microservice/internal/domain/repository"
	"github.com/foodspot-microservice/internal/worker"
)

const retryDelay = 500 * time.Millisecond

// SearchHistoryWorker читает события поиска из стрима и сохраняет их в историю
type SearchHistoryWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	historyRepo  repository.HistoryRepository
	consumerName string
	maxRetries   int
}

// NewSearchHistoryWorker создает новый SearchHistoryWorker
func NewSearchHistoryWorker(
	streamRepo repository.StreamRepository,
	historyRepo repository.HistoryRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *SearchHistoryWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &SearchHistoryWorker{
		BaseWorker:   worker.NewBaseWorker("search-history-worker", consumerGroup, logger),
		streamRepo:   streamRepo,
		historyRepo:  historyRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start запускает обработку событий поиска
func (w *SearchHistoryWorker) Start(ctx context.Context) error {
	logger := w.Logger()

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamSearchEvents, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.StreamSearchEvents, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("consume stream: %w", err)
	}

	logger.Info("Search history worker started",
		zap.String("stream", domain.StreamSearchEvents),
		zap.String("group", w.ConsumerGroup()),
		zap.String("consumer", w.consumerName))

	for {
		select {
		case <-ctx.Done():
			logger.Info("Search history worker context cancelled")
			return nil
		case <-w.StopChan():
			logger.Info("Search history worker stopped")
			return nil
		case msg, ok := <-messages:
			if !ok {
				logger.Info("Search events stream closed")
				return nil
			}
			w.processMessage(ctx, msg)
		}
	}
}

// processMessage обрабатывает одно сообщение стрима
func (w *SearchHistoryWorker) processMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.SearchEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		// Битое сообщение подтверждаем, иначе оно будет читаться вечно
		logger.Error("Failed to unmarshal search event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		w.ack(ctx, msg.ID)
		return
	}

	var saveErr error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		saveErr = w.historyRepo.SaveSearchEvent(ctx, event)
		if saveErr == nil {
			break
		}

		logger.Warn("Failed to save search event, retrying",
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Int("max_retries", w.maxRetries),
			zap.Error(saveErr))

		select {
		case <-ctx.Done():
			return
		case <-time.After(retryDelay):
		}
	}

	if saveErr != nil {
		// Не подтверждаем, сообщение останется в pending для повторной обработки
		logger.Error("Giving up on search event after retries",
			zap.String("request_id", event.RequestID),
			zap.Error(saveErr))
		return
	}

	w.ack(ctx, msg.ID)
}

func (w *SearchHistoryWorker) ack(ctx context.Context, messageID string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamSearchEvents, w.ConsumerGroup(), messageID); err != nil {
		w.Logger().Error("Failed to ack message",
			zap.String("message_id", messageID),
			zap.Error(err))
	}
}
