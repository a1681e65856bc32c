package insighting

import (
	"github.com/vfg2006/publimais-api/internal/domain"
)

// Insighter monta as visões analíticas do usuário logado
type Insighter interface {
	// GetDashboard agrega engajamento, crescimento e campanhas do usuário
	GetDashboard(userID int) (*domain.Dashboard, error)

	// GetCampaignDetail devolve a campanha com KPIs e o ER de cada post vinculado
	GetCampaignDetail(userID int, campaignID string) (*domain.CampaignDetail, error)
}
