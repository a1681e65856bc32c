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

func TestSharedReportRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSharedReportRepository(conn)
	now := time.Now()
	expires := now.Add(7 * 24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO shared_reports \(id,user_id,public_id,report_data,views_count,expires_at\)`).
		WithArgs("r1", 1, "abc123", sqlmock.AnyArg(), 0, expires).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	report := &domain.SharedReport{
		ID: "r1", UserID: 1, PublicID: "abc123", ExpiresAt: expires,
		ReportData: &domain.ReportData{ReportType: domain.ReportTypePortfolio},
	}
	require.NoError(t, repo.Create(report))
	assert.Equal(t, now, report.CreatedAt)
}

func TestSharedReportRepository_GetActiveByPublicID(t *testing.T) {
	columns := []string{"id", "user_id", "public_id", "report_data", "views_count", "expires_at", "created_at"}
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Relatório ativo", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSharedReportRepository(conn)

		data := []byte(`{"profile":{"display_name":"Ana Souza"},"summary":{"total_followers":22100},"report_type":"professional_portfolio"}`)
		mock.ExpectQuery(`SELECT (.+) FROM shared_reports WHERE public_id = \$1 AND expires_at > \$2`).
			WithArgs("abc123", now).
			WillReturnRows(sqlmock.NewRows(columns).AddRow("r1", 1, "abc123", data, 3, now.Add(time.Hour), now))

		report, err := repo.GetActiveByPublicID("abc123", now)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, 3, report.ViewsCount)
		assert.Equal(t, "Ana Souza", report.ReportData.Profile.DisplayName)
		assert.Equal(t, int64(22100), report.ReportData.Summary.TotalFollowers)
	})

	t.Run("Expirado ou inexistente", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		repo := NewSharedReportRepository(conn)

		mock.ExpectQuery(`SELECT (.+) FROM shared_reports`).
			WithArgs("nope", now).
			WillReturnError(sql.ErrNoRows)

		report, err := repo.GetActiveByPublicID("nope", now)

		assert.NoError(t, err)
		assert.Nil(t, report)
	})
}

func TestSharedReportRepository_IncrementViews(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSharedReportRepository(conn)

	mock.ExpectExec(`UPDATE shared_reports SET views_count = views_count \+ 1 WHERE id = \$1`).
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.IncrementViews("r1"))
}

func TestSharedReportRepository_DeleteExpired(t *testing.T) {
	conn, mock := newMockConnection(t)
	repo := NewSharedReportRepository(conn)
	now := time.Now()

	mock.ExpectExec(`DELETE FROM shared_reports WHERE expires_at <= \$1`).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteExpired(now)

	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
