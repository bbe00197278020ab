package service

import "context"

// IGenerator клиент сервиса генерации текста. Принимает готовый промпт,
// возвращает свободный текст; схема структурированных ответов не
// гарантируется и разбирается на стороне вызывающего.
type IGenerator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
