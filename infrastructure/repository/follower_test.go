package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/publimais-api/internal/domain"
)

func TestFollowerRepository_ListByUser(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewFollowerRepository(conn)

	mock.ExpectQuery(`SELECT month, followers, (.+) FROM follower_history WHERE user_id = \$1 ORDER BY position ASC`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"month", "followers", "date"}).
			AddRow("Jan", 12000, "2024-01-31").
			AddRow("Fev", 13800, ""))

	points, err := repo.ListByUser(1)

	require.NoError(t, err)
	assert.Equal(t, []domain.FollowerPoint{
		{Month: "Jan", Followers: 12000, Date: "2024-01-31"},
		{Month: "Fev", Followers: 13800},
	}, points)
}

func TestFollowerRepository_ReplaceHistory(t *testing.T) {
	points := []domain.FollowerPoint{
		{Month: "Jan", Followers: 12000, Date: "2024-01-31"},
		{Month: "Fev", Followers: 13800},
	}

	t.Run("Substitui a série numa transação", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewFollowerRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM follower_history WHERE user_id = \$1`).
			WithArgs(1).
			WillReturnResult(sqlmock.NewResult(0, 6))
		mock.ExpectExec(`INSERT INTO follower_history \(user_id,position,month,followers,date\)`).
			WithArgs(1, 0, "Jan", int64(12000), "2024-01-31", 1, 1, "Fev", int64(13800), nil).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		assert.NoError(t, repo.ReplaceHistory(context.Background(), 1, points))
	})

	t.Run("Falha na inserção desfaz a remoção", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewFollowerRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM follower_history`).WillReturnResult(sqlmock.NewResult(0, 6))
		mock.ExpectExec(`INSERT INTO follower_history`).WillReturnError(errors.New("violação de constraint"))
		mock.ExpectRollback()

		err := repo.ReplaceHistory(context.Background(), 1, points)

		assert.ErrorContains(t, err, "erro ao inserir histórico")
	})

	t.Run("Série longa é inserida em lotes com posição contínua", func(t *testing.T) {
		defer func(size int) { maxRowsPerInsert = size }(maxRowsPerInsert)
		maxRowsPerInsert = 2

		conn, mock := newMockConnection(t)
		repo := NewFollowerRepository(conn)

		series := append(points, domain.FollowerPoint{Month: "Mar", Followers: 15000})

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM follower_history`).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO follower_history`).
			WithArgs(1, 0, "Jan", int64(12000), "2024-01-31", 1, 1, "Fev", int64(13800), nil).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`INSERT INTO follower_history`).
			WithArgs(1, 2, "Mar", int64(15000), nil).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.ReplaceHistory(context.Background(), 1, series))
	})

	t.Run("Série vazia só limpa o histórico", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewFollowerRepository(conn)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM follower_history`).WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 6))
		mock.ExpectCommit()

		assert.NoError(t, repo.ReplaceHistory(context.Background(), 1, nil))
	})
}
