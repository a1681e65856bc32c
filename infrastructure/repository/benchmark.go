package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const similarProfilesTable = "similar_profiles"

type BenchmarkRepository interface {
	ListSimilarProfiles(platform domain.Platform) ([]domain.SimilarProfile, error)
}

type benchmarkRepository struct {
	conn *postgres.Connection
}

func NewBenchmarkRepository(conn *postgres.Connection) BenchmarkRepository {
	return &benchmarkRepository{
		conn: conn,
	}
}

// ListSimilarProfiles filtra só a plataforma no banco; faixas, país e nicho ficam para o analytics
func (r *benchmarkRepository) ListSimilarProfiles(platform domain.Platform) ([]domain.SimilarProfile, error) {
	builder := squirrel.
		Select("handle", "er", "avg_views", "followers", "platform", "country", "niches").
		From(similarProfilesTable).
		OrderBy("handle ASC").
		PlaceholderFormat(squirrel.Dollar)

	if platform != "" {
		builder = builder.Where(squirrel.Eq{"platform": platform})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.SimilarProfile, 0)
	for rows.Next() {
		var p domain.SimilarProfile
		if err := rows.Scan(&p.Handle, &p.ER, &p.AvgViews, &p.Followers, &p.Platform, &p.Country, (*pq.StringArray)(&p.Niches)); err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}
