package fortune

import (
	"context"
	"fmt"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/usecases/fortune/prompts"
)

// dialogueState состояние машины диалога. Машина живёт один прогон:
// каждое входящее сообщение заново входит в неё, всё состояние между
// прогонами - в персистентном профиле.
type dialogueState int

const (
	stateCollectingInfo dialogueState = iota
	stateAwaitingConcern
	stateGeneratingReading
	stateDone
)

// respond прогоняет машину диалога для одного входящего сообщения и
// возвращает полный текст ответа ассистента
func (s *Service) respond(ctx context.Context, profile *domain.Profile, text string) (string, error) {
	state := stateCollectingInfo
	if len(profile.MissingSlots()) == 0 {
		state = stateAwaitingConcern
	}

	var reply string
	var concern string

	for state != stateDone {
		switch state {
		case stateCollectingInfo:
			nextState, collectReply, err := s.collectInfo(ctx, profile, text)
			if err != nil {
				return "", err
			}
			reply = collectReply
			state = nextState

		case stateAwaitingConcern:
			extracted, err := s.extractConcern(ctx, text)
			if err != nil {
				return "", err
			}
			if extracted == "" {
				reply = prompts.ConcernQuestion(s.locale)
				state = stateDone
				continue
			}
			concern = extracted
			state = stateGeneratingReading

		case stateGeneratingReading:
			readingReply, err := s.generateReading(ctx, profile, concern)
			if err != nil {
				return "", err
			}
			reply = readingReply
			state = stateDone
		}
	}

	return reply, nil
}

// collectInfo один шаг сбора анкеты: извлечь слоты, слить, пересчитать
// недостающие. Если анкета дозаполнилась - резолвим календарь и
// пропускаем диалог дальше, к теме запроса.
func (s *Service) collectInfo(ctx context.Context, profile *domain.Profile, text string) (dialogueState, string, error) {
	missing := profile.MissingSlots()

	values, err := s.extractSlots(ctx, text, missing)
	if err != nil {
		return stateDone, "", err
	}

	profile.ApplySlots(values)
	if err := s.ProfileRepo.MergeSlots(ctx, profile); err != nil {
		return stateDone, "", err
	}

	missing = profile.MissingSlots()
	if len(missing) == 0 {
		if err := s.resolveCalendar(ctx, profile); err != nil {
			return stateDone, "", err
		}
		return stateAwaitingConcern, "", nil
	}

	question, err := s.askForMissing(ctx, profile, missing)
	if err != nil {
		return stateDone, "", err
	}
	return stateDone, question, nil
}

// resolveCalendar один вызов внешнего резолвера, затем атомарная запись
// всех производных полей и активация профиля
func (s *Service) resolveCalendar(ctx context.Context, profile *domain.Profile) error {
	attrs, err := s.Calendar.Resolve(ctx, profile.BirthDate, profile.BirthTime, profile.BirthPlace, profile.Gender)
	if err != nil {
		return fmt.Errorf("calendar resolution failed: %w", err)
	}

	profile.SetCalendar(attrs)
	if err := s.ProfileRepo.UpdateCalendar(ctx, profile); err != nil {
		return err
	}

	s.Log.Info("saju profile activated",
		"user_id", profile.UserID,
		"handle", profile.Handle)
	return nil
}

// askForMissing генерирует естественный уточняющий вопрос о
// недостающих слотах
func (s *Service) askForMissing(ctx context.Context, profile *domain.Profile, missing []string) (string, error) {
	prompt := prompts.CollectInfo(s.locale, existingInfo(profile), missing)
	question, err := s.Generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("follow-up question failed: %w", err)
	}
	return question, nil
}
