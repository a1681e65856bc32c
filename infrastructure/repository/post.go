package repository

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const postsTable = "posts"

// maxRowsPerInsert mantém cada INSERT abaixo do limite de 65535 parâmetros do Postgres
var maxRowsPerInsert = 1000

type PostRepository interface {
	ListByUser(userID int) ([]domain.Post, error)
	SaveOrUpdate(userID int, posts []domain.Post) error
}

type postRepository struct {
	conn *postgres.Connection
}

func NewPostRepository(conn *postgres.Connection) PostRepository {
	return &postRepository{
		conn: conn,
	}
}

func (r *postRepository) ListByUser(userID int) ([]domain.Post, error) {
	query, args, err := squirrel.
		Select("external_id", "title", "platform", "type", "likes", "comments", "shares", "views", "tags").
		From(postsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("external_id ASC").
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

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Platform,
			&post.Type,
			&post.Likes,
			&post.Comments,
			&post.Shares,
			&post.Views,
			(*pq.StringArray)(&post.Tags),
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return posts, nil
}

// SaveOrUpdate grava os posts em lotes de até maxRowsPerInsert linhas, todos na mesma transação
func (r *postRepository) SaveOrUpdate(userID int, posts []domain.Post) error {
	if len(posts) == 0 {
		return nil
	}

	statements := make([]string, 0, len(posts)/maxRowsPerInsert+1)
	statementArgs := make([][]interface{}, 0, cap(statements))
	for batch := range slices.Chunk(posts, maxRowsPerInsert) {
		sqlQuery, args, err := upsertPostsQuery(userID, batch).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}
		statements = append(statements, sqlQuery)
		statementArgs = append(statementArgs, args)
	}

	return r.conn.RunInTransaction(context.Background(), func(q postgres.Queryer) error {
		for i, sqlQuery := range statements {
			if _, err := q.Exec(sqlQuery, statementArgs[i]...); err != nil {
				return fmt.Errorf("erro ao executar query de inserção: %w", err)
			}
		}
		return nil
	})
}

func upsertPostsQuery(userID int, posts []domain.Post) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(postsTable).
		Columns("user_id", "external_id", "title", "platform", "type", "likes", "comments", "shares", "views", "tags").
		PlaceholderFormat(squirrel.Dollar)

	for _, post := range posts {
		query = query.Values(
			userID,
			post.ID,
			post.Title,
			post.Platform,
			post.Type,
			post.Likes,
			post.Comments,
			post.Shares,
			post.Views,
			pq.StringArray(post.Tags),
		)
	}

	return query.Suffix(`
		ON CONFLICT (user_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			platform = EXCLUDED.platform,
			type = EXCLUDED.type,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			shares = EXCLUDED.shares,
			views = EXCLUDED.views,
			tags = EXCLUDED.tags,
			updated_at = CURRENT_TIMESTAMP
	`)
}
