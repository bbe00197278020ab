package service

import (
	"context"

	"github.com/TBOO-AI/agent/internal/domain"
)

// ISocialClient клиент платформы: поиск упоминаний и публикация ответов.
// Аутентификация и сессия - забота адаптера.
type ISocialClient interface {
	// SearchMentions возвращает свежие упоминания хэндла, новые первыми
	SearchMentions(ctx context.Context, handle string, limit int) ([]*domain.InboundMessage, error)

	// PostReply публикует один пост-ответ и возвращает id созданного поста
	PostReply(ctx context.Context, text string, inReplyToID string) (string, error)

	// VerifyCredentials проверяет, что сессия платформы жива
	VerifyCredentials(ctx context.Context) (bool, error)
}
