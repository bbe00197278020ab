package repository

import (
	"context"

	"github.com/TBOO-AI/agent/internal/domain"
)

// IConversationRepo интерфейс для append-only журнала переписки
type IConversationRepo interface {
	// Insert добавляет записи переписки одной вставкой
	Insert(ctx context.Context, records []*domain.ConversationRecord) error

	// ExistsBySourceMessageID проверяет, есть ли уже пользовательская
	// запись с таким id входящего сообщения (идемпотентность ответов)
	ExistsBySourceMessageID(ctx context.Context, messageID string) (bool, error)
}
