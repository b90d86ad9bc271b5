// Package http содержит HTTP API сервиса заметок на fiber.
package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonote/internal/notes/adapters/http/middleware"
	"gonote/internal/notes/ports/api"
	"gonote/pkg/logger"
	"gonote/pkg/validation"
)

const msgNoteRemoved = "Note removed"

// NotesHandler обслуживает /api/notes.
type NotesHandler struct {
	notes     api.NoteUseCase
	validator *validation.Validator
}

// NewNotesHandler создает обработчик заметок.
func NewNotesHandler(notes api.NoteUseCase, validator *validation.Validator) *NotesHandler {
	return &NotesHandler{notes: notes, validator: validator}
}

// ListNotes - GET /api/notes.
func (h *NotesHandler) ListNotes(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	notes, err := h.notes.ListNotes(ctx, identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(newNoteListResponse(notes))
}

// CreateNote - POST /api/notes.
func (h *NotesHandler) CreateNote(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	var req CreateNoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	if err := h.validator.Validate(req); err != nil {
		return err
	}

	note, err := h.notes.CreateNote(ctx, identity.UserID, req.Title, req.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(newNoteResponse(note))
}

// GetNote - GET /api/notes/:id.
func (h *NotesHandler) GetNote(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	note, err := h.notes.GetNote(ctx, identity.UserID, c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(newNoteResponse(note))
}

// UpdateNote - PUT /api/notes/:id.
func (h *NotesHandler) UpdateNote(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	var req UpdateNoteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	note, err := h.notes.UpdateNote(ctx, identity.UserID, c.Params("id"), req.toPatch())
	if err != nil {
		return err
	}

	return c.JSON(newNoteResponse(note))
}

// DeleteNote - DELETE /api/notes/:id.
func (h *NotesHandler) DeleteNote(c fiber.Ctx) error {
	ctx, identity, err := identify(c)
	if err != nil {
		return err
	}

	if err := h.notes.DeleteNote(ctx, identity.UserID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(MessageResponse{Message: msgNoteRemoved})
}

func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().JSON(out); err != nil {
		ctx := middleware.RequestContext(c)
		logger.Log(ctx).Debug(ctx, "invalid request body", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, middleware.MsgInvalidBody)
	}
	return nil
}

// errNoIdentity означает, что маршрут зарегистрирован без NewAuthMiddleware.
var errNoIdentity = errors.New("identity missing from request context")
