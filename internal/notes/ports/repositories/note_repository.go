// Package repositories defines repository interfaces for the notes service.
package repositories

import (
	"context"

	"gonote/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс хранилища заметок.
type NoteRepository interface {
	// Create сохраняет заметку и заполняет ID и временные метки.
	Create(ctx context.Context, note *entities.Note) error

	// GetByID возвращает entities.ErrNoteNotFound, если заметки нет.
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)

	// ListByUserID возвращает заметки владельца, новые первыми.
	ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error)

	// Update сохраняет заголовок и текст; изменение ограничено владельцем note.UserID.
	Update(ctx context.Context, note *entities.Note) error

	Delete(ctx context.Context, noteID, userID string) error
}
