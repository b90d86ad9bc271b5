package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
	"gonote/pkg/validation"
)

// Сообщения, которые видит клиент.
const (
	MsgNoteNotFound       = "Note not found"
	MsgNotAuthorized      = "Not authorized"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgInvalidNoteID      = "Invalid note id"
	MsgInvalidBody        = "Invalid request body"
	MsgRouteNotFound      = "Route not found"
	MsgInternalError      = "Internal server error"
)

// ErrorResponse - единый формат ошибки.
type ErrorResponse struct {
	Message string `json:"message"`
}

// Resolve сопоставляет ошибку с HTTP кодом и сообщением для клиента.
// Неизвестные ошибки скрываются за 500 без подробностей.
func Resolve(err error) (int, string) {
	var fe *fiber.Error
	var ve *validation.Error

	switch {
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, ve.Error()
	case errors.Is(err, entities.ErrInvalidNoteID):
		return fiber.StatusBadRequest, MsgInvalidNoteID
	case errors.Is(err, entities.ErrEmptyTitle):
		return fiber.StatusBadRequest, entities.ErrEmptyTitle.Error()
	case errors.Is(err, entities.ErrEmptyContent):
		return fiber.StatusBadRequest, entities.ErrEmptyContent.Error()
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return fiber.StatusBadRequest, MsgUserExists
	case errors.Is(err, entities.ErrNoteNotFound):
		return fiber.StatusNotFound, MsgNoteNotFound
	case errors.Is(err, services.ErrNotOwner):
		return fiber.StatusUnauthorized, MsgNotAuthorized
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, MsgInvalidCredentials
	case isCredentialError(err), errors.Is(err, entities.ErrUserNotFound):
		return fiber.StatusUnauthorized, MsgTokenFailed
	default:
		return fiber.StatusInternalServerError, MsgInternalError
	}
}

// StatusFromError возвращает HTTP код для ошибки.
func StatusFromError(err error) int {
	code, _ := Resolve(err)
	return code
}

// ErrorHandler - fiber.Config.ErrorHandler, отвечающий {"message": ...}.
func ErrorHandler(c fiber.Ctx, err error) error {
	code, msg := Resolve(err)
	return c.Status(code).JSON(ErrorResponse{Message: msg})
}

// NotFound завершает цепочку для неизвестных маршрутов.
func NotFound(fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, MsgRouteNotFound)
}
