package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
)

func TestUserRepository_CreateUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users \(name,lastname,email,password_hash,active,role_id\)`).
		WithArgs("Ana", "Souza", "ana@publimais.app", "hash", true, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(7, now, now))

	user, err := repo.CreateUser(&domain.User{Name: "Ana", Lastname: "Souza", Email: "ana@publimais.app", PasswordHash: "hash", Active: true, RoleID: 3})

	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)
	assert.Equal(t, now, user.CreatedAt)
}

func TestUserRepository_GetUserByEmail(t *testing.T) {
	columns := []string{"id", "name", "lastname", "email", "password_hash", "active", "role_id", "avatar_url", "bio", "niche", "location", "website", "created_at", "updated_at"}

	t.Run("Usuário encontrado", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("ana@publimais.app").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(7, "Ana", "Souza", "ana@publimais.app", "hash", true, 3, nil, "Criadora de conteúdo", "moda", "São Paulo", nil, now, now))

		user, err := repo.GetUserByEmail("ana@publimais.app")

		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, 7, user.ID)
		assert.Nil(t, user.AvatarURL)
		require.NotNil(t, user.Niche)
		assert.Equal(t, "moda", *user.Niche)
	})

	t.Run("Usuário inexistente devolve nil sem erro", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewUserRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1`).
			WithArgs("x@y.z").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetUserByEmail("x@y.z")

		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetUserByID_NotFound(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(9)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.Nil(t, user)
}

func TestUserRepository_UpdateUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewUserRepository(conn)

	mock.ExpectExec(`UPDATE users SET active = \$1, updated_at = NOW\(\), password_hash = \$2 WHERE id = \$3`).
		WithArgs(true, "novo-hash", 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateUser(&domain.User{ID: 7, Active: true, PasswordHash: "novo-hash"})

	assert.NoError(t, err)
}
