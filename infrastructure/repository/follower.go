package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const followerHistoryTable = "follower_history"

type FollowerRepository interface {
	ListByUser(userID int) ([]domain.FollowerPoint, error)
	ReplaceHistory(ctx context.Context, userID int, points []domain.FollowerPoint) error
}

type followerRepository struct {
	conn *postgres.Connection
}

func NewFollowerRepository(conn *postgres.Connection) FollowerRepository {
	return &followerRepository{
		conn: conn,
	}
}

// ListByUser devolve a série na ordem em que foi importada
func (r *followerRepository) ListByUser(userID int) ([]domain.FollowerPoint, error) {
	query, args, err := squirrel.
		Select("month", "followers", "COALESCE(to_char(date, 'YYYY-MM-DD'), '')").
		From(followerHistoryTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]domain.FollowerPoint, 0)
	for rows.Next() {
		var point domain.FollowerPoint
		if err := rows.Scan(&point.Month, &point.Followers, &point.Date); err != nil {
			return nil, fmt.Errorf("erro ao escanear ponto de seguidores: %w", err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

// ReplaceHistory troca toda a série do usuário numa única transação
func (r *followerRepository) ReplaceHistory(ctx context.Context, userID int, points []domain.FollowerPoint) error {
	deleteSQL, deleteArgs, err := squirrel.
		Delete(followerHistoryTable).
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	var (
		insertSQL  []string
		insertArgs [][]interface{}
		position   int
	)
	for batch := range slices.Chunk(points, maxRowsPerInsert) {
		insert := squirrel.
			Insert(followerHistoryTable).
			Columns("user_id", "position", "month", "followers", "date").
			PlaceholderFormat(squirrel.Dollar)

		for _, point := range batch {
			var date interface{}
			if point.Date != "" {
				date = point.Date
			}
			insert = insert.Values(userID, position, point.Month, point.Followers, date)
			position++
		}

		sqlQuery, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}
		insertSQL = append(insertSQL, sqlQuery)
		insertArgs = append(insertArgs, args)
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		if _, err := q.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao remover histórico: %w", err)
		}

		for i, sqlQuery := range insertSQL {
			if _, err := q.Exec(sqlQuery, insertArgs[i]...); err != nil {
				return fmt.Errorf("erro ao inserir histórico: %w", err)
			}
		}

		return nil
	})
}
