package fortune

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/google/uuid"
)

var mentionPrefixRe = regexp.MustCompile(`^@\S+\s*`)

// ProcessMentions один прогон конвейера: забрать свежие упоминания,
// найти первого ещё не отвеченного кандидата, ответить ему.
// Один прогон - максимум один ответ, остальные кандидаты подождут
// следующего тика.
// Возвращает число упоминаний, дошедших до проверки дедупликации.
func (s *Service) ProcessMentions(ctx context.Context) (int, error) {
	mentions, err := s.Social.SearchMentions(ctx, s.cfg.BotHandle, s.cfg.FetchLimit)
	if err != nil {
		return 0, fmt.Errorf("mention search failed: %w", err)
	}

	s.Log.Info("mentions fetched", "count", len(mentions))

	processed := 0
	for _, mention := range mentions {
		if mention.Handle == "" || strings.EqualFold(mention.Handle, s.cfg.BotHandle) {
			continue
		}
		processed++

		answered, err := s.isAnswered(ctx, mention.ID)
		if err != nil {
			s.Log.Error("dedup check failed",
				"error", err,
				"tweet_id", mention.ID)
			break
		}
		if answered {
			s.Log.Debug("mention already answered", "tweet_id", mention.ID)
			continue
		}

		// отказ на уровне сообщения не валит весь прогон: логируем,
		// следующий тик обработает упоминание заново
		if err := s.handleMention(ctx, mention); err != nil {
			s.Log.Error("failed to handle mention",
				"error", err,
				"tweet_id", mention.ID,
				"handle", mention.Handle)
		}
		break
	}

	return processed, nil
}

// handleMention полный цикл ответа на одно упоминание: профиль,
// диалог, публикация цепочки, журнал
func (s *Service) handleMention(ctx context.Context, mention *domain.InboundMessage) error {
	text := mentionPrefixRe.ReplaceAllString(strings.TrimSpace(mention.Text), "")

	s.Log.Info("processing mention",
		"tweet_id", mention.ID,
		"handle", mention.Handle)

	profile, err := s.loadOrCreateProfile(ctx, mention.Handle)
	if err != nil {
		return err
	}

	reply, err := s.respond(ctx, profile, text)
	if err != nil {
		return err
	}
	if reply == "" {
		s.Log.Warn("empty reply generated, skipping publish", "tweet_id", mention.ID)
		return nil
	}

	if _, err := s.publishChain(ctx, mention.Handle, reply, mention.ID); err != nil {
		// журнал не пишем: на следующем тике упоминание обработается заново
		return err
	}

	threadID, recorded := s.recordTranscript(ctx, profile, mention.ID, text, reply)
	if recorded && s.Events != nil {
		chunks := len(SplitReply(mention.Handle, reply, s.cfg.MaxPostLength))
		if err := s.Events.SendExchangeRecorded(ctx, mention.ID, mention.Handle, threadID, chunks); err != nil {
			s.Log.Warn("failed to emit exchange event",
				"error", err,
				"tweet_id", mention.ID)
		}
	}

	return nil
}

// loadOrCreateProfile профиль по хэндлу; при первом контакте создаёт
// пустую анкету
func (s *Service) loadOrCreateProfile(ctx context.Context, handle string) (*domain.Profile, error) {
	profile, err := s.ProfileRepo.GetByHandle(ctx, handle)
	if err == nil {
		return profile, nil
	}
	if !domain.IsNotFound(err) {
		return nil, err
	}

	now := time.Now()
	profile = &domain.Profile{
		UserID:    uuid.New(),
		Handle:    handle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ProfileRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	s.Log.Info("profile created", "handle", handle, "user_id", profile.UserID)
	return profile, nil
}
