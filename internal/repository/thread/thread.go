package threadRepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"log/slog"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/ports/persistence"
	ports "github.com/TBOO-AI/agent/internal/ports/repository"
	"github.com/google/uuid"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий тредов
func New(db persistence.Persistence, log *slog.Logger) ports.IThreadRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// GetOrCreate возвращает тред пользователя, создавая его лениво при
// первом контакте. У пользователя один тред.
func (r *Repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Thread, error) {
	var thread domain.Thread
	err := r.db.Get(ctx, &thread,
		`SELECT id, user_id, created_at FROM threads WHERE user_id = $1 ORDER BY created_at LIMIT 1`,
		userID)
	if err == nil {
		return &thread, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		r.Log.Error("failed to get thread",
			"error", err,
			"user_id", userID)
		return nil, &domain.PersistenceError{Op: "get thread", Err: err}
	}

	thread = domain.Thread{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	err = r.db.Exec(ctx,
		`INSERT INTO threads (id, user_id, created_at) VALUES ($1, $2, $3)`,
		thread.ID, thread.UserID, thread.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create thread",
			"error", err,
			"user_id", userID)
		return nil, &domain.PersistenceError{Op: "create thread", Err: err}
	}

	r.Log.Debug("thread created",
		"thread_id", thread.ID,
		"user_id", userID)
	return &thread, nil
}
