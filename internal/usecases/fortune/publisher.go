package fortune

import (
	"context"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
)

// publishChain публикует ответ цепочкой постов: первый отвечает на
// входящее сообщение, каждый следующий - на предыдущий пост цепочки.
// Посты строго последовательны, между ними фиксированная пауза.
// На первом же отказе останавливаемся: уже отправленные посты не
// удаляются и не повторяются.
func (s *Service) publishChain(ctx context.Context, handle, reply, replyToID string) (int, error) {
	chunks := SplitReply(handle, reply, s.cfg.MaxPostLength)
	if len(chunks) == 0 {
		return 0, nil
	}

	delay := time.Duration(s.cfg.PostDelayMillis) * time.Millisecond
	previousID := replyToID

	for i, chunk := range chunks {
		postedID, err := s.Social.PostReply(ctx, chunk, previousID)
		if err != nil {
			if i == 0 {
				// ни один чанк не ушёл - обычный отказ платформы
				return 0, err
			}
			s.Log.Error("reply chain truncated",
				"posted", i,
				"total", len(chunks),
				"error", err)
			return i, &domain.PartialPublishFailure{Posted: i, Total: len(chunks), Err: err}
		}
		previousID = postedID

		if i < len(chunks)-1 && delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return i + 1, &domain.PartialPublishFailure{Posted: i + 1, Total: len(chunks), Err: ctx.Err()}
			}
		}
	}

	s.Log.Info("reply chain published",
		"handle", handle,
		"chunks", len(chunks))
	return len(chunks), nil
}
