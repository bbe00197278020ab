package repository

import (
	"context"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/google/uuid"
)

// IThreadRepo интерфейс для работы с тредами переписки
type IThreadRepo interface {
	// GetOrCreate возвращает тред пользователя, создавая его лениво
	// при первом контакте
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Thread, error)
}
