// Package entities defines the domain entities for the notes service.
package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound  = errors.New("note not found")
	ErrInvalidNoteID = errors.New("invalid note id")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrEmptyContent  = errors.New("content cannot be empty")
)

// Note представляет собой заметку пользователя. UserID задается при создании и не меняется.
type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote создает заметку владельца userID.
func NewNote(userID, title, content string) (*Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrEmptyTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	now := time.Now().UTC()
	return &Note{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ParseNoteID проверяет, что идентификатор является UUID, и возвращает его в канонической форме.
func ParseNoteID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrInvalidNoteID
	}
	return id.String(), nil
}

// NotePatch перечисляет изменяемые поля заметки. nil означает "не менять".
type NotePatch struct {
	Title   *string
	Content *string
}

// Validate запрещает явно переданные пустые значения.
func (p NotePatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrEmptyTitle
	}
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// IsEmpty сообщает, что патч ничего не меняет.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply переносит заданные поля патча в заметку.
func (n *Note) Apply(p NotePatch) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
}
