package analytics

import (
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/utils"
)

// CalcCampaignKPIs calcula CPC, CPM, CTR, CR e ROAS. Cada indicador vira zero quando o seu denominador é zero.
func CalcCampaignKPIs(c *domain.Campaign) domain.CampaignKPIs {
	if c == nil {
		return domain.CampaignKPIs{}
	}

	clicks := float64(c.Clicks)
	impressions := float64(c.Impressions)

	return domain.CampaignKPIs{
		CPC:  utils.SafeDiv(c.Budget, clicks),
		CPM:  utils.SafeDiv(c.Budget, impressions/1000),
		CTR:  utils.SafeDiv(clicks, impressions) * 100,
		CR:   utils.SafeDiv(float64(c.Conversions), clicks) * 100,
		ROAS: utils.SafeDiv(c.Revenue, c.Budget),
	}
}

// CampaignPosts seleciona os posts vinculados à campanha na ordem em que aparecem em posts
func CampaignPosts(c *domain.Campaign, posts []domain.Post) []domain.Post {
	result := make([]domain.Post, 0)
	if c == nil || len(c.Posts) == 0 {
		return result
	}

	ids := make(map[int64]struct{}, len(c.Posts))
	for _, id := range c.Posts {
		ids[id] = struct{}{}
	}

	for _, post := range posts {
		if _, ok := ids[post.ID]; ok {
			result = append(result, post)
		}
	}

	return result
}

// CampaignDetail junta campanha, KPIs e o ER de cada post da campanha
func CampaignDetail(c domain.Campaign, posts []domain.Post) domain.CampaignDetail {
	return domain.CampaignDetail{
		Campaign: c,
		KPIs:     CalcCampaignKPIs(&c),
		Posts:    PostsWithER(CampaignPosts(&c, posts)),
	}
}
