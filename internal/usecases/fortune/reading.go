package fortune

import (
	"context"
	"fmt"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/usecases/fortune/prompts"
)

// extractConcern извлекает тему запроса через constrained-intent промпт.
// Кривой структурированный ответ - это "темы нет", а не ошибка.
func (s *Service) extractConcern(ctx context.Context, text string) (string, error) {
	prompt := prompts.ExtractConcern(s.locale, text)

	raw, err := s.Generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("concern extraction failed: %w", err)
	}

	parsed := parseStructured(raw)
	if parsed == nil {
		s.Log.Warn("concern extraction returned unparseable output",
			"output_length", len(raw))
		return "", nil
	}

	return parsed["concern"], nil
}

// generateReading итоговое толкование: один шаблонный вызов генерации
// со всеми полями профиля и темой запроса. Без повторов - ошибка
// сервиса генерации поднимается наверх.
func (s *Service) generateReading(ctx context.Context, profile *domain.Profile, concern string) (string, error) {
	prompt := prompts.Reading(s.locale, profile, concern)

	reading, err := s.Generator.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("reading generation failed: %w", err)
	}

	s.Log.Debug("reading generated",
		"user_id", profile.UserID,
		"concern_length", len(concern),
		"reading_length", len(reading))
	return reading, nil
}
