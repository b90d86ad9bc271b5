package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/static"

	"gonote/internal/notes/adapters/http/middleware"
	"gonote/internal/notes/ports/api"
	"gonote/pkg/logger"
	"gonote/pkg/validation"
)

// Dependencies - все, что нужно для сборки HTTP приложения.
type Dependencies struct {
	Notes     api.NoteUseCase
	Auth      api.AuthUseCase
	Health    *HealthHandler
	Logger    *logger.Logger
	StaticDir string
	Origins   []string
}

// NewApp создает fiber приложение с единым обработчиком ошибок.
func NewApp(cfg fiber.Config, deps Dependencies) *fiber.App {
	cfg.ErrorHandler = middleware.ErrorHandler
	app := fiber.New(cfg)
	SetupRouter(app, deps)
	return app
}

// SetupRouter настраивает маршрутизацию.
func SetupRouter(app *fiber.App, deps Dependencies) {
	base := deps.Logger
	if base == nil {
		base = logger.NewNop()
	}
	origins := deps.Origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	validator := validation.New()
	notesHandler := NewNotesHandler(deps.Notes, validator)
	usersHandler := NewUsersHandler(deps.Auth, validator)
	requireAuth := middleware.NewAuthMiddleware(deps.Auth)

	app.Use(middleware.NewRequestIDMiddleware(base))
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	if deps.Health != nil {
		app.Get("/health", deps.Health.Health)
	}

	users := app.Group("/api/users")
	users.Post("/register", usersHandler.Register)
	users.Post("/login", usersHandler.Login)
	// в fiber v3 обработчик передается первым, middleware выполняются до него
	users.Get("/me", usersHandler.Me, requireAuth)
	users.Post("/logout", usersHandler.Logout, requireAuth)

	notes := app.Group("/api/notes", requireAuth)
	notes.Get("/", notesHandler.ListNotes)
	notes.Post("/", notesHandler.CreateNote)
	notes.Get("/:id", notesHandler.GetNote)
	notes.Put("/:id", notesHandler.UpdateNote)
	notes.Delete("/:id", notesHandler.DeleteNote)

	if deps.StaticDir != "" {
		app.Get("/*", static.New(deps.StaticDir))
	}

	app.Use(middleware.NotFound)
}
