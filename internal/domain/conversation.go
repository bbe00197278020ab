package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role роль автора записи в переписке
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationRecord одна запись переписки. Создаётся ровно один раз после
// успешной публикации ответа; никогда не изменяется и не удаляется.
// SourceMessageID заполняется только для пользовательских записей -
// ответ ассистента не является прямым ответом на конкретный пост.
type ConversationRecord struct {
	ID              uuid.UUID `json:"id" db:"id"`
	ThreadID        uuid.UUID `json:"thread_id" db:"thread_id"`
	Role            Role      `json:"role" db:"role"`
	Content         string    `json:"content" db:"content"`
	SourceMessageID *string   `json:"tweet_id,omitempty" db:"tweet_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Thread группирует записи переписки одного пользователя.
// Создаётся лениво при первом контакте.
type Thread struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
