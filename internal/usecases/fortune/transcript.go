package fortune

import (
	"context"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/google/uuid"
)

const answeredKeyPrefix = "answered:"

// isAnswered проверяет, отвечали ли уже на это сообщение. Сначала кэш
// (быстрый путь), затем журнал переписки - он авторитетен.
func (s *Service) isAnswered(ctx context.Context, messageID string) (bool, error) {
	if cached, err := s.Cache.Exists(ctx, answeredKeyPrefix+messageID); err == nil && cached {
		return true, nil
	}

	return s.ConversationRepo.ExistsBySourceMessageID(ctx, messageID)
}

// recordTranscript пишет пару записей журнала после полного успеха
// публикации: вопрос пользователя (с id источника) и полный
// несчанкованный ответ ассистента (без id - он не ответ на конкретный
// пост). Best-effort: отказ здесь логируется, посты уже опубликованы
// и не отзываются.
func (s *Service) recordTranscript(ctx context.Context, profile *domain.Profile, messageID, userText, reply string) (uuid.UUID, bool) {
	thread, err := s.ThreadRepo.GetOrCreate(ctx, profile.UserID)
	if err != nil {
		s.Log.Error("failed to get thread for transcript",
			"error", err,
			"user_id", profile.UserID)
		return uuid.Nil, false
	}

	now := time.Now()
	sourceID := messageID
	records := []*domain.ConversationRecord{
		{
			ID:              uuid.New(),
			ThreadID:        thread.ID,
			Role:            domain.RoleUser,
			Content:         userText,
			SourceMessageID: &sourceID,
			CreatedAt:       now,
		},
		{
			ID:        uuid.New(),
			ThreadID:  thread.ID,
			Role:      domain.RoleAssistant,
			Content:   reply,
			CreatedAt: now,
		},
	}

	if err := s.ConversationRepo.Insert(ctx, records); err != nil {
		s.Log.Error("failed to record transcript",
			"error", err,
			"tweet_id", messageID)
		return thread.ID, false
	}

	ttl := time.Duration(s.cfg.AnsweredTTLHours) * time.Hour
	if err := s.Cache.Set(ctx, answeredKeyPrefix+messageID, "1", ttl); err != nil {
		s.Log.Warn("failed to cache answered message",
			"error", err,
			"tweet_id", messageID)
	}

	return thread.ID, true
}
