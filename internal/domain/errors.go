package domain

import (
	"errors"
	"fmt"
)

// AuthError неверный credential триггера - обработка не начинается
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string {
	return e.Msg
}

// NotFoundError неизвестный пользователь или тред
type NotFoundError struct {
	Entity string
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %v", e.Entity, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// DownstreamServiceError отказ внешнего сервиса (генерация, публикация,
// календарный резолвер) - оставшиеся шаги текущего сообщения прерываются
type DownstreamServiceError struct {
	Service string
	Err     error
}

func (e *DownstreamServiceError) Error() string {
	return fmt.Sprintf("%s service error: %v", e.Service, e.Err)
}

func (e *DownstreamServiceError) Unwrap() error {
	return e.Err
}

// PersistenceError отказ хранилища; логируется и поднимается наверх,
// повторов внутри текущего прогона нет
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error on %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// PartialPublishFailure часть чанков опубликована, часть - нет.
// Не компенсируется: уже отправленные посты не удаляются и не повторяются.
type PartialPublishFailure struct {
	Posted int
	Total  int
	Err    error
}

func (e *PartialPublishFailure) Error() string {
	return fmt.Sprintf("published %d of %d chunks: %v", e.Posted, e.Total, e.Err)
}

func (e *PartialPublishFailure) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

func IsPartialPublish(err error) bool {
	var partial *PartialPublishFailure
	return errors.As(err, &partial)
}
