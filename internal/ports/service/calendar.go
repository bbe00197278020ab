package service

import (
	"context"

	"github.com/TBOO-AI/agent/internal/domain"
)

// ICalendarResolver внешний детерминированный пересчёт данных рождения
// в календарные атрибуты Четырёх Столпов
type ICalendarResolver interface {
	Resolve(ctx context.Context, birthDate, birthTime, birthPlace, gender string) (*domain.CalendarAttributes, error)
}
