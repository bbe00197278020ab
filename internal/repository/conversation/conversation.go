package conversationRepo

import (
	"context"

	"log/slog"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/TBOO-AI/agent/internal/ports/persistence"
	ports "github.com/TBOO-AI/agent/internal/ports/repository"
)

type Repository struct {
	db  persistence.Persistence
	Log *slog.Logger
}

// New создаёт новый репозиторий журнала переписки
func New(db persistence.Persistence, log *slog.Logger) ports.IConversationRepo {
	return &Repository{
		db:  db,
		Log: log,
	}
}

// Insert добавляет записи переписки в одной транзакции: пара
// вопрос/ответ либо попадает в журнал целиком, либо не попадает вовсе
func (r *Repository) Insert(ctx context.Context, records []*domain.ConversationRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx persistence.Transaction) error {
		for _, record := range records {
			err := tx.Exec(ctx,
				`INSERT INTO messages (id, thread_id, role, content, tweet_id, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				record.ID, record.ThreadID, record.Role, record.Content, record.SourceMessageID, record.CreatedAt)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.Log.Error("failed to insert conversation records",
			"error", err,
			"count", len(records))
		return &domain.PersistenceError{Op: "insert records", Err: err}
	}

	r.Log.Debug("conversation records inserted", "count", len(records))
	return nil
}

// ExistsBySourceMessageID проверяет, есть ли уже запись с таким id
// входящего сообщения. Исполняется до любых внешних вызовов.
func (r *Repository) ExistsBySourceMessageID(ctx context.Context, messageID string) (bool, error) {
	var exists bool
	err := r.db.Get(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM messages WHERE tweet_id = $1)`,
		messageID)
	if err != nil {
		r.Log.Error("failed to check message existence",
			"error", err,
			"tweet_id", messageID)
		return false, &domain.PersistenceError{Op: "check message", Err: err}
	}
	return exists, nil
}
