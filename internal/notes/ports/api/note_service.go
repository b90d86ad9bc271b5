// Package api defines the inbound ports used by transport adapters.
package api

import (
	"context"

	"gonote/internal/notes/domain/entities"
)

// NoteUseCase - операции над заметками от имени userID.
type NoteUseCase interface {
	ListNotes(ctx context.Context, userID string) ([]*entities.Note, error)

	CreateNote(ctx context.Context, userID, title, content string) (*entities.Note, error)

	GetNote(ctx context.Context, userID, noteID string) (*entities.Note, error)

	UpdateNote(ctx context.Context, userID, noteID string, patch entities.NotePatch) (*entities.Note, error)

	DeleteNote(ctx context.Context, userID, noteID string) error
}
