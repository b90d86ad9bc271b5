package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/ports/repositories"
	"gonote/pkg/logger"
)

const (
	queryCreateNote = `
        INSERT INTO notes (user_id, title, content)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	queryGetNote = `
        SELECT id, user_id, title, content, created_at, updated_at
        FROM notes
        WHERE id = $1`

	queryListNotes = `
        SELECT id, user_id, title, content, created_at, updated_at
        FROM notes
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC`

	queryUpdateNote = `
        UPDATE notes
        SET title = $1, content = $2, updated_at = NOW()
        WHERE id = $3 AND user_id = $4
        RETURNING updated_at`

	queryDeleteNote = `DELETE FROM notes WHERE id = $1 AND user_id = $2`
)

const (
	errCreateNote = "failed to create note"
	errGetNote    = "failed to get note"
	errListNotes  = "failed to list notes"
	errScanNote   = "failed to scan note"
	errIterNotes  = "failed to iterate notes"
	errUpdateNote = "failed to update note"
	errDeleteNote = "failed to delete note"
)

// NoteRepository реализует repositories.NoteRepository поверх Postgres.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку и заполняет серверные поля.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))

	err := r.pool.QueryRow(ctx, queryCreateNote, note.UserID, note.Title, note.Content).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		log.Error(ctx, errCreateNote, zap.String("user_id", note.UserID), zap.Error(err))
		return fmt.Errorf("%s: %w", errCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.String("note_id", note.ID))
	return nil
}

// GetByID ищет заметку без учета владельца: проверка прав выполняется выше.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))

	var note entities.Note
	err := r.pool.QueryRow(ctx, queryGetNote, noteID).
		Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.String("note_id", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, errGetNote, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errGetNote, err)
	}

	return &note, nil
}

// ListByUserID возвращает заметки пользователя, новые первыми. Пустой результат - пустой срез.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByUserID"))

	rows, err := r.pool.Query(ctx, queryListNotes, userID)
	if err != nil {
		log.Error(ctx, errListNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errListNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		if err := rows.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			log.Error(ctx, errScanNote, zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errScanNote, err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, errIterNotes, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errIterNotes, err)
	}

	log.Debug(ctx, "notes listed", zap.String("user_id", userID), zap.Int("count", len(notes)))
	return notes, nil
}

// Update сохраняет заголовок и текст. Если строки уже нет, возвращает ErrNoteNotFound.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))

	err := r.pool.QueryRow(ctx, queryUpdateNote, note.Title, note.Content, note.ID, note.UserID).
		Scan(&note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note vanished before update", zap.String("note_id", note.ID))
			return entities.ErrNoteNotFound
		}
		log.Error(ctx, errUpdateNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errUpdateNote, err)
	}

	return nil
}

// Delete удаляет заметку владельца userID.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID string) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))

	tag, err := r.pool.Exec(ctx, queryDeleteNote, noteID, userID)
	if err != nil {
		log.Error(ctx, errDeleteNote, zap.Error(err))
		return fmt.Errorf("%s: %w", errDeleteNote, err)
	}

	if tag.RowsAffected() == 0 {
		log.Debug(ctx, "note not found for deletion", zap.String("note_id", noteID))
		return entities.ErrNoteNotFound
	}

	return nil
}
