package domain

// InboundMessage входящее упоминание бота на платформе. Read-only,
// приходит из поиска упоминаний.
type InboundMessage struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"` // хэндл автора без @
	Text        string `json:"text"`
	InReplyToID string `json:"in_reply_to_id,omitempty"` // якорь цепочки ответов, может быть пустым
}
