package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"
)

// memoryNotes - потокобезопасная замена Postgres для сценарных тестов.
type memoryNotes struct {
	mu    sync.Mutex
	notes map[string]entities.Note
	clock time.Time
}

func newMemoryNotes() *memoryNotes {
	return &memoryNotes{
		notes: make(map[string]entities.Note),
		clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memoryNotes) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memoryNotes) Create(_ context.Context, note *entities.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	note.ID = uuid.NewString()
	note.CreatedAt = m.tick()
	note.UpdatedAt = note.CreatedAt
	m.notes[note.ID] = *note
	return nil
}

func (m *memoryNotes) GetByID(_ context.Context, noteID string) (*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, ok := m.notes[noteID]
	if !ok {
		return nil, entities.ErrNoteNotFound
	}
	return &n, nil
}

func (m *memoryNotes) ListByUserID(_ context.Context, userID string) ([]*entities.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*entities.Note, 0)
	for _, n := range m.notes {
		if n.UserID == userID {
			n := n
			out = append(out, &n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryNotes) Update(_ context.Context, note *entities.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notes[note.ID]
	if !ok || stored.UserID != note.UserID {
		return entities.ErrNoteNotFound
	}
	stored.Title = note.Title
	stored.Content = note.Content
	stored.UpdatedAt = m.tick()
	m.notes[note.ID] = stored
	note.UpdatedAt = stored.UpdatedAt
	return nil
}

func (m *memoryNotes) Delete(_ context.Context, noteID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.notes[noteID]
	if !ok || stored.UserID != userID {
		return entities.ErrNoteNotFound
	}
	delete(m.notes, noteID)
	return nil
}

func (m *memoryNotes) snapshot(noteID string) (entities.Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[noteID]
	return n, ok
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]entities.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]entities.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *entities.User) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return nil, services.ErrEmailAlreadyExists
		}
	}
	created := *user
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now().UTC()
	m.users[created.ID] = created
	return &created, nil
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	return &u, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (m *memoryUsers) remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }
