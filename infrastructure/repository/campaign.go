package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/publimais-api/infrastructure/database/postgres"
	"github.com/vfg2006/publimais-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id",
	"name",
	"budget",
	"COALESCE(to_char(start_date, 'YYYY-MM-DD'), '')",
	"COALESCE(to_char(end_date, 'YYYY-MM-DD'), '')",
	"post_ids",
	"clicks",
	"conversions",
	"revenue",
	"impressions",
	"emv",
	"promo_code",
}

type CampaignRepository interface {
	ListByUser(userID int) ([]domain.Campaign, error)
	GetByID(userID int, campaignID string) (*domain.Campaign, error)
	SaveOrUpdate(userID int, campaign *domain.Campaign) error
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCampaign(row rowScanner) (*domain.Campaign, error) {
	var c domain.Campaign
	var postIDs pq.Int64Array

	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Budget,
		&c.Start,
		&c.End,
		&postIDs,
		&c.Clicks,
		&c.Conversions,
		&c.Revenue,
		&c.Impressions,
		&c.EMV,
		&c.PromoCode,
	); err != nil {
		return nil, err
	}

	c.Posts = []int64(postIDs)
	if c.Posts == nil {
		c.Posts = []int64{}
	}

	return &c, nil
}

func (r *campaignRepository) ListByUser(userID int) ([]domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC NULLS LAST", "name ASC").
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

	campaigns := make([]domain.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

// GetByID devolve nil, nil quando a campanha não existe para o usuário
func (r *campaignRepository) GetByID(userID int, campaignID string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"user_id": userID, "id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	c, err := scanCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return c, nil
}

func (r *campaignRepository) SaveOrUpdate(userID int, c *domain.Campaign) error {
	var start, end interface{}
	if c.Start != "" {
		start = c.Start
	}
	if c.End != "" {
		end = c.End
	}

	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "user_id", "name", "budget", "start_date", "end_date", "post_ids",
			"clicks", "conversions", "revenue", "impressions", "emv", "promo_code").
		Values(c.ID, userID, c.Name, c.Budget, start, end, pq.Int64Array(c.Posts),
			c.Clicks, c.Conversions, c.Revenue, c.Impressions, c.EMV, c.PromoCode).
		Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			budget = EXCLUDED.budget,
			start_date = EXCLUDED.start_date,
			end_date = EXCLUDED.end_date,
			post_ids = EXCLUDED.post_ids,
			clicks = EXCLUDED.clicks,
			conversions = EXCLUDED.conversions,
			revenue = EXCLUDED.revenue,
			impressions = EXCLUDED.impressions,
			emv = EXCLUDED.emv,
			promo_code = EXCLUDED.promo_code,
			updated_at = CURRENT_TIMESTAMP
		WHERE campaigns.user_id = EXCLUDED.user_id
	`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err = r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao salvar campanha: %w", err)
	}

	return nil
}
