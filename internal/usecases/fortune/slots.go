package fortune

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/usecases/fortune/prompts"
	"github.com/kaptinlin/jsonrepair"
)

// принимаемые форматы даты рождения; на выходе всегда YYYY-MM-DD
var birthDateLayouts = []string{
	"2006-01-02",
	"20060102",
	"2006.01.02",
	"2006/01/02",
	"January 2, 2006",
}

// extractSlots извлекает слоты анкеты из свободного текста через сервис
// генерации. Промпт ограничен только недостающими слотами; кривой JSON
// от модели - это "ничего не извлеклось", а не ошибка.
func (s *Service) extractSlots(ctx context.Context, text string, missingSlots []string) (domain.SlotValues, error) {
	prompt := prompts.ExtractSlots(s.locale, text, missingSlots)

	raw, err := s.Generator.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("slot extraction failed: %w", err)
	}

	parsed := parseStructured(raw)
	if parsed == nil {
		s.Log.Warn("slot extraction returned unparseable output",
			"output_length", len(raw))
		return domain.SlotValues{}, nil
	}

	values := domain.SlotValues{}
	// берём только запрошенные слоты - значения для остальных модель
	// выдумывать не должна, а если выдумала, игнорируем
	for _, name := range missingSlots {
		value, ok := parsed[name]
		if !ok {
			continue
		}
		if normalized, ok := normalizeSlot(name, value); ok {
			values[name] = normalized
		}
	}

	s.Log.Debug("slots extracted",
		"requested", len(missingSlots),
		"extracted", len(values))
	return values, nil
}

// parseStructured разбирает структурированный ответ модели в key->string.
// Сначала срезаются code fences, затем JSON чинится jsonrepair'ом.
// nil - ответ непригоден.
func parseStructured(raw string) map[string]string {
	cleaned := stripCodeFence(raw)
	if cleaned == "" {
		return nil
	}

	repaired, err := jsonrepair.JSONRepair(cleaned)
	if err != nil {
		repaired = cleaned
	}

	var generic map[string]interface{}
	if err := json.Unmarshal([]byte(repaired), &generic); err != nil {
		return nil
	}

	result := make(map[string]string, len(generic))
	for key, value := range generic {
		if str, ok := value.(string); ok {
			result[key] = strings.TrimSpace(str)
		}
	}
	return result
}

// stripCodeFence убирает обрамление ```json ... ``` из ответа модели
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
	}
	return strings.TrimSpace(cleaned)
}

// normalizeSlot приводит значение слота к фиксированному формату.
// Второй результат false - значение непригодно и слот не заполняется.
func normalizeSlot(name, value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	switch name {
	case domain.SlotBirthDate:
		return normalizeBirthDate(value)
	case domain.SlotBirthTime:
		return normalizeBirthTime(value)
	case domain.SlotGender:
		return normalizeGender(value)
	default:
		return value, true
	}
}

// normalizeBirthDate приводит дату к YYYY-MM-DD
func normalizeBirthDate(value string) (string, bool) {
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// normalizeBirthTime приводит время к HH:MM. Сентинел 00:00 модель
// выдаёт только при явном "не знаю время" - здесь он проходит как есть.
func normalizeBirthTime(value string) (string, bool) {
	for _, layout := range []string{"15:04", "15.04", "3:04 PM"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("15:04"), true
		}
	}
	return "", false
}

// normalizeGender приводит пол к одному из двух фиксированных токенов
func normalizeGender(value string) (string, bool) {
	switch strings.ToLower(value) {
	case "male", "m", "man":
		return domain.GenderMale, true
	case "female", "f", "woman":
		return domain.GenderFemale, true
	}
	return "", false
}

// existingInfo собирает уже известные слоты для промпта уточняющего вопроса
func existingInfo(profile *domain.Profile) string {
	known := map[string]string{}
	if profile.BirthDate != "" {
		known[domain.SlotBirthDate] = profile.BirthDate
	}
	if profile.BirthTime != "" {
		known[domain.SlotBirthTime] = profile.BirthTime
	}
	if profile.BirthPlace != "" {
		known[domain.SlotBirthPlace] = profile.BirthPlace
	}
	if profile.Gender != "" {
		known[domain.SlotGender] = profile.Gender
	}
	if len(known) == 0 {
		return "{}"
	}
	data, err := json.Marshal(known)
	if err != nil {
		return "{}"
	}
	return string(data)
}
