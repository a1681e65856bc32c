package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const (
	testProfilesTable = "test_profiles"
	testMetricsTable  = "test_metrics"
	adminLogsTable    = "admin_logs"
)

var testProfileColumns = []string{
	"id", "admin_user_id", "platform", "username", "display_name", "profile_picture_url", "bio",
	"followers_count", "following_count", "posts_count", "engagement_rate", "last_sync_at", "created_at",
}

type TestProfileRepository interface {
	CreateProfile(profile *domain.TestProfile) error
	GetProfile(profileID string) (*domain.TestProfile, error)
	// ListProfiles com adminUserID zero devolve os perfis de todos os administradores
	ListProfiles(adminUserID int) ([]*domain.TestProfile, error)
	UpdateProfileStats(profile *domain.TestProfile) error
	DeleteProfile(adminUserID int, profileID string) (bool, error)

	SaveMetrics(metrics *domain.TestMetrics) error
	GetLatestMetrics(profileID string) (*domain.TestMetrics, error)

	CreateLog(entry *domain.AdminLog) error
	ListLogs(adminUserID int, limit uint64) ([]*domain.AdminLog, error)
}

type testProfileRepository struct {
	conn *postgres.Connection
}

func NewTestProfileRepository(conn *postgres.Connection) TestProfileRepository {
	return &testProfileRepository{
		conn: conn,
	}
}

func scanTestProfile(row rowScanner) (*domain.TestProfile, error) {
	var p domain.TestProfile
	if err := row.Scan(
		&p.ID,
		&p.AdminUserID,
		&p.Platform,
		&p.Username,
		&p.DisplayName,
		&p.ProfilePictureURL,
		&p.Bio,
		&p.FollowersCount,
		&p.FollowingCount,
		&p.PostsCount,
		&p.EngagementRate,
		&p.LastSyncAt,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *testProfileRepository) CreateProfile(p *domain.TestProfile) error {
	query, args, err := squirrel.
		Insert(testProfilesTable).
		Columns("id", "admin_user_id", "platform", "username", "display_name", "profile_picture_url", "bio",
			"followers_count", "following_count", "posts_count", "engagement_rate", "last_sync_at").
		Values(p.ID, p.AdminUserID, p.Platform, p.Username, p.DisplayName, p.ProfilePictureURL, p.Bio,
			p.FollowersCount, p.FollowingCount, p.PostsCount, p.EngagementRate, p.LastSyncAt).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("erro ao criar perfil de teste: %w", err)
	}

	return nil
}

func (r *testProfileRepository) GetProfile(profileID string) (*domain.TestProfile, error) {
	query, args, err := squirrel.
		Select(testProfileColumns...).
		From(testProfilesTable).
		Where(squirrel.Eq{"id": profileID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	p, err := scanTestProfile(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear perfil de teste: %w", err)
	}

	return p, nil
}

func (r *testProfileRepository) ListProfiles(adminUserID int) ([]*domain.TestProfile, error) {
	builder := squirrel.
		Select(testProfileColumns...).
		From(testProfilesTable).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if adminUserID != 0 {
		builder = builder.Where(squirrel.Eq{"admin_user_id": adminUserID})
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

	profiles := make([]*domain.TestProfile, 0)
	for rows.Next() {
		p, err := scanTestProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear perfil de teste: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return profiles, nil
}

func (r *testProfileRepository) UpdateProfileStats(p *domain.TestProfile) error {
	query, args, err := squirrel.
		Update(testProfilesTable).
		Set("followers_count", p.FollowersCount).
		Set("engagement_rate", p.EngagementRate).
		Set("last_sync_at", p.LastSyncAt).
		Where(squirrel.Eq{"id": p.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar perfil de teste: %w", err)
	}

	return nil
}

func (r *testProfileRepository) DeleteProfile(adminUserID int, profileID string) (bool, error) {
	query, args, err := squirrel.
		Delete(testProfilesTable).
		Where(squirrel.Eq{"id": profileID, "admin_user_id": adminUserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover perfil de teste: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *testProfileRepository) SaveMetrics(m *domain.TestMetrics) error {
	growth, err := json.Marshal(m.Growth7d)
	if err != nil {
		return fmt.Errorf("erro ao serializar crescimento: %w", err)
	}
	topPost, err := json.Marshal(m.TopPost)
	if err != nil {
		return fmt.Errorf("erro ao serializar top post: %w", err)
	}

	query, args, err := squirrel.
		Insert(testMetricsTable).
		Columns("id", "test_profile_id", "followers_count", "following_count", "posts_count", "engagement_rate",
			"likes_avg", "comments_avg", "views_avg", "reach_avg", "impressions_avg", "profile_views",
			"website_clicks", "growth_7d", "top_post").
		Values(m.ID, m.TestProfileID, m.FollowersCount, m.FollowingCount, m.PostsCount, m.EngagementRate,
			m.LikesAvg, m.CommentsAvg, m.ViewsAvg, m.ReachAvg, m.ImpressionsAvg, m.ProfileViews,
			m.WebsiteClicks, growth, topPost).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&m.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar métricas: %w", err)
	}

	return nil
}

func (r *testProfileRepository) GetLatestMetrics(profileID string) (*domain.TestMetrics, error) {
	query, args, err := squirrel.
		Select("id", "test_profile_id", "followers_count", "following_count", "posts_count", "engagement_rate",
			"likes_avg", "comments_avg", "views_avg", "reach_avg", "impressions_avg", "profile_views",
			"website_clicks", "growth_7d", "top_post", "created_at").
		From(testMetricsTable).
		Where(squirrel.Eq{"test_profile_id": profileID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var m domain.TestMetrics
	var growth, topPost []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&m.ID,
		&m.TestProfileID,
		&m.FollowersCount,
		&m.FollowingCount,
		&m.PostsCount,
		&m.EngagementRate,
		&m.LikesAvg,
		&m.CommentsAvg,
		&m.ViewsAvg,
		&m.ReachAvg,
		&m.ImpressionsAvg,
		&m.ProfileViews,
		&m.WebsiteClicks,
		&growth,
		&topPost,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
	}

	if len(growth) > 0 {
		if err := json.Unmarshal(growth, &m.Growth7d); err != nil {
			return nil, fmt.Errorf("erro ao desserializar crescimento: %w", err)
		}
	}
	if len(topPost) > 0 {
		if err := json.Unmarshal(topPost, &m.TopPost); err != nil {
			return nil, fmt.Errorf("erro ao desserializar top post: %w", err)
		}
	}

	return &m, nil
}

func nullableJSON(v any) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *testProfileRepository) CreateLog(entry *domain.AdminLog) error {
	requestData, err := nullableJSON(entry.RequestData)
	if err != nil {
		return fmt.Errorf("erro ao serializar requisição: %w", err)
	}
	responseData, err := nullableJSON(entry.ResponseData)
	if err != nil {
		return fmt.Errorf("erro ao serializar resposta: %w", err)
	}

	query, args, err := squirrel.
		Insert(adminLogsTable).
		Columns("id", "admin_user_id", "action", "platform", "endpoint", "request_data", "response_data",
			"error_message", "status_code", "duration_ms").
		Values(entry.ID, entry.AdminUserID, entry.Action, entry.Platform, entry.Endpoint, requestData, responseData,
			entry.ErrorMessage, entry.StatusCode, entry.DurationMs).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao registrar log administrativo: %w", err)
	}

	return nil
}

func (r *testProfileRepository) ListLogs(adminUserID int, limit uint64) ([]*domain.AdminLog, error) {
	query, args, err := squirrel.
		Select("id", "admin_user_id", "action", "platform", "endpoint", "request_data", "response_data",
			"error_message", "status_code", "duration_ms", "created_at").
		From(adminLogsTable).
		Where(squirrel.Eq{"admin_user_id": adminUserID}).
		OrderBy("created_at DESC").
		Limit(limit).
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

	logs := make([]*domain.AdminLog, 0)
	for rows.Next() {
		var entry domain.AdminLog
		var requestData, responseData []byte
		if err := rows.Scan(
			&entry.ID,
			&entry.AdminUserID,
			&entry.Action,
			&entry.Platform,
			&entry.Endpoint,
			&requestData,
			&responseData,
			&entry.ErrorMessage,
			&entry.StatusCode,
			&entry.DurationMs,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear log: %w", err)
		}

		if len(requestData) > 0 {
			var v any
			if err := json.Unmarshal(requestData, &v); err == nil {
				entry.RequestData = v
			}
		}
		if len(responseData) > 0 {
			var v any
			if err := json.Unmarshal(responseData, &v); err == nil {
				entry.ResponseData = v
			}
		}

		logs = append(logs, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return logs, nil
}
