package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const sharedReportsTable = "shared_reports"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type SharedReportRepository interface {
	Create(report *domain.SharedReport) error
	GetActiveByPublicID(publicID string, now time.Time) (*domain.SharedReport, error)
	IncrementViews(reportID string) error
	DeleteExpired(now time.Time) (int64, error)
}

type sharedReportRepository struct {
	conn *postgres.Connection
}

func NewSharedReportRepository(conn *postgres.Connection) SharedReportRepository {
	return &sharedReportRepository{
		conn: conn,
	}
}

func (r *sharedReportRepository) Create(report *domain.SharedReport) error {
	data, err := json.Marshal(report.ReportData)
	if err != nil {
		return fmt.Errorf("erro ao serializar relatório: %w", err)
	}

	query, args, err := squirrel.
		Insert(sharedReportsTable).
		Columns("id", "user_id", "public_id", "report_data", "views_count", "expires_at").
		Values(report.ID, report.UserID, report.PublicID, data, 0, report.ExpiresAt).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRow(query, args...).Scan(&report.CreatedAt); err != nil {
		return fmt.Errorf("erro ao salvar relatório compartilhado: %w", err)
	}

	return nil
}

// GetActiveByPublicID devolve nil, nil quando o relatório não existe ou já expirou
func (r *sharedReportRepository) GetActiveByPublicID(publicID string, now time.Time) (*domain.SharedReport, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "public_id", "report_data", "views_count", "expires_at", "created_at").
		From(sharedReportsTable).
		Where(squirrel.Eq{"public_id": publicID}).
		Where(squirrel.Gt{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var report domain.SharedReport
	var data []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&report.ID,
		&report.UserID,
		&report.PublicID,
		&data,
		&report.ViewsCount,
		&report.ExpiresAt,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório: %w", err)
	}

	report.ReportData = &domain.ReportData{}
	if err := json.Unmarshal(data, report.ReportData); err != nil {
		return nil, fmt.Errorf("erro ao desserializar relatório: %w", err)
	}

	return &report, nil
}

func (r *sharedReportRepository) IncrementViews(reportID string) error {
	query, args, err := squirrel.
		Update(sharedReportsTable).
		Set("views_count", squirrel.Expr("views_count + 1")).
		Where(squirrel.Eq{"id": reportID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao incrementar visualizações: %w", err)
	}

	return nil
}

func (r *sharedReportRepository) DeleteExpired(now time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(sharedReportsTable).
		Where(squirrel.LtOrEq{"expires_at": now}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover relatórios expirados: %w", err)
	}

	return result.RowsAffected()
}
