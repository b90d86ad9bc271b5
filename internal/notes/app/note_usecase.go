// Package app implements application business logic for the notes service.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
	"gonote/internal/notes/ports/api"
	"gonote/internal/notes/ports/repositories"
	"gonote/pkg/logger"
)

const (
	methodListNotes  = "ListNotes"
	methodCreateNote = "CreateNote"
	methodGetNote    = "GetNote"
	methodUpdateNote = "UpdateNote"
	methodDeleteNote = "DeleteNote"

	msgNoteCreated   = "note created"
	msgNoteUpdated   = "note updated"
	msgNoteDeleted   = "note deleted"
	msgNotOwner      = "requester does not own the note"
	msgInvalidNoteID = "malformed note id"

	errCtxListingNotes  = "listing notes"
	errCtxCreatingNote  = "creating note"
	errCtxFetchingNote  = "fetching note"
	errCtxUpdatingNote  = "updating note"
	errCtxDeletingNote  = "deleting note"
	errCtxValidating    = "validating note"
	errCtxAuthorization = "checking ownership"
)

// NoteUseCaseImpl реализует api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает сервис заметок.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

// ListNotes возвращает заметки пользователя, новые первыми.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, userID string) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log(ctx).Error(ctx, "failed to list notes",
			zap.String("method", methodListNotes), zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}
	return notes, nil
}

// CreateNote создает заметку, владельцем которой становится userID.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, userID, title, content string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.String("user_id", userID))

	note, err := entities.NewNote(userID, title, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidating, err)
	}

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.String("note_id", note.ID))
	return note, nil
}

// GetNote возвращает заметку, если ее владелец userID.
func (uc *NoteUseCaseImpl) GetNote(ctx context.Context, userID, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.String("user_id", userID))
	return uc.fetchOwned(ctx, log, userID, noteID)
}

// UpdateNote применяет разрешенные поля патча к заметке владельца.
func (uc *NoteUseCaseImpl) UpdateNote(
	ctx context.Context,
	userID, noteID string,
	patch entities.NotePatch,
) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.String("user_id", userID))

	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxValidating, err)
	}

	note, err := uc.fetchOwned(ctx, log, userID, noteID)
	if err != nil {
		return nil, err
	}

	if patch.IsEmpty() {
		return note, nil
	}

	note.Apply(patch)
	if err := uc.noteRepo.Update(ctx, note); err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, "failed to update note", zap.Error(err))
		}
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.String("note_id", note.ID))
	return note, nil
}

// DeleteNote удаляет заметку владельца.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, userID, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.String("user_id", userID))

	note, err := uc.fetchOwned(ctx, log, userID, noteID)
	if err != nil {
		return err
	}

	if err := uc.noteRepo.Delete(ctx, note.ID, userID); err != nil {
		if !errors.Is(err, entities.ErrNoteNotFound) {
			log.Error(ctx, "failed to delete note", zap.Error(err))
		}
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted, zap.String("note_id", note.ID))
	return nil
}

// fetchOwned загружает заметку и проверяет, что userID - ее владелец.
func (uc *NoteUseCaseImpl) fetchOwned(ctx context.Context, log *logger.Logger, userID, rawID string) (*entities.Note, error) {
	noteID, err := entities.ParseNoteID(rawID)
	if err != nil {
		log.Debug(ctx, msgInvalidNoteID, zap.String("note_id", rawID))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingNote, err)
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingNote, err)
	}

	if !services.CanModify(userID, note.UserID) {
		log.Warn(ctx, msgNotOwner, zap.String("note_id", noteID), zap.String("owner_id", note.UserID))
		return nil, fmt.Errorf("%s: %w", errCtxAuthorization, services.ErrNotOwner)
	}

	return note, nil
}
