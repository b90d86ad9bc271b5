package postgres_test

import (
	"testing"
	"time"

	"gonote/internal/notes/adapters/postgres"
	"gonote/internal/notes/domain/entities"
	"gonote/internal/notes/domain/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()
	input := &entities.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice", "alice@example.com", "hash", now))

		user, err := postgres.NewUserRepository(mock).Create(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, now, user.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user, err := postgres.NewUserRepository(mock).Create(ctx, input)

		require.ErrorIs(t, err, services.ErrEmailAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("other error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("alice", "alice@example.com", "hash").
			WillReturnError(errDatabaseConnection)

		_, err := postgres.NewUserRepository(mock).Create(ctx, input)
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestUserRepository_Find(t *testing.T) {
	ctx := testContext(t)
	now := time.Now().UTC()

	t.Run("by id", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(testUserID).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice", "alice@example.com", "hash", now))

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("by email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(testUserID, "alice", "alice@example.com", "hash", now))

		user, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
	})

	t.Run("missing", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE id").
			WithArgs(testUserID).
			WillReturnError(pgx.ErrNoRows)

		user, err := postgres.NewUserRepository(mock).FindByID(ctx, testUserID)
		require.ErrorIs(t, err, entities.ErrUserNotFound)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM users WHERE email").
			WithArgs("x@example.com").
			WillReturnError(errDatabaseConnection)

		_, err := postgres.NewUserRepository(mock).FindByEmail(ctx, "x@example.com")
		require.ErrorIs(t, err, errDatabaseConnection)
	})
}

func TestRepositoryFactory(t *testing.T) {
	mock := newMock(t)
	factory := postgres.NewRepositoryFactory(mock)

	assert.Same(t, factory.NoteRepository(), factory.NoteRepository())
	assert.IsType(t, &postgres.NoteRepository{}, factory.NoteRepository())
	assert.IsType(t, &postgres.UserRepository{}, factory.UserRepository())
}
