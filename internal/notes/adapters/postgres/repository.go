package postgres

import "gonote/internal/notes/ports/repositories"

// RepositoryFactory создает репозитории поверх одного пула.
type RepositoryFactory struct {
	noteRepo repositories.NoteRepository
	userRepo repositories.UserRepository
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{
		noteRepo: NewNoteRepository(pool),
		userRepo: NewUserRepository(pool),
	}
}

// NoteRepository возвращает репозиторий заметок.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return f.noteRepo
}

// UserRepository возвращает репозиторий пользователей.
func (f *RepositoryFactory) UserRepository() repositories.UserRepository {
	return f.userRepo
}
