package repository

import (
	"context"

	"github.com/TBOO-AI/agent/internal/domain"
)

// IProfileRepo интерфейс для работы с саджу-профилями
type IProfileRepo interface {
	// GetByHandle возвращает профиль по хэндлу платформы.
	// Возвращает NotFoundError, если профиля ещё нет.
	GetByHandle(ctx context.Context, handle string) (*domain.Profile, error)

	// Create создаёт пустой профиль при первом контакте
	Create(ctx context.Context, profile *domain.Profile) error

	// MergeSlots записывает только слоты анкеты одним upsert по user_id.
	// Производные поля не трогает.
	MergeSlots(ctx context.Context, profile *domain.Profile) error

	// UpdateCalendar записывает все производные календарные поля и
	// is_saju_active одним UPDATE - наблюдатель не видит частичного набора
	UpdateCalendar(ctx context.Context, profile *domain.Profile) error
}
