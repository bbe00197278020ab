package events

import (
	"context"

	"github.com/google/uuid"
)

// IExchangeProducer публикует событие о записанном обмене (вопрос
// пользователя + полный ответ) для downstream-аналитики. Best-effort:
// отказ продюсера не влияет на уже опубликованный ответ.
type IExchangeProducer interface {
	SendExchangeRecorded(ctx context.Context, messageID string, handle string, threadID uuid.UUID, chunkCount int) error
	Close() error
}
