package http

import (
	"time"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
)

// CreateNoteRequest - тело POST /api/notes.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdateNoteRequest - тело PUT /api/notes/:id. Прочие ключи тела игнорируются.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r UpdateNoteRequest) toPatch() entities.NotePatch {
	return entities.NotePatch{Title: r.Title, Content: r.Content}
}

// NoteResponse - представление заметки для клиента.
type NoteResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	User      string    `json:"user"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newNoteResponse(n *entities.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		User:      n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func newNoteListResponse(notes []*entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, newNoteResponse(n))
	}
	return out
}

// RegisterRequest - тело POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,pwd"`
}

// LoginRequest - тело POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse возвращается при регистрации и входе.
type AuthResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

func newAuthResponse(r *services.AuthResult) AuthResponse {
	return AuthResponse{ID: r.UserID, Username: r.Username, Email: r.Email, Token: r.Token}
}

// ProfileResponse - ответ GET /api/users/me.
type ProfileResponse struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageResponse - ответ без данных.
type MessageResponse struct {
	Message string `json:"message"`
}
