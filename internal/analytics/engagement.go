package analytics

import (
	"github.com/vfg2006/publimais-api/internal/domain"
	"github.com/vfg2006/publimais-api/pkg/utils"
)

// ERForPost calcula a taxa de engajamento ponderada do post, em percentual com duas casas
func ERForPost(post domain.Post) float64 {
	if post.Views == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(weightedInteractions(post) / float64(post.Views) * 100)
}

type bucket struct {
	interactions float64
	views        int64
	likes        int64
	comments     int64
	shares       int64
	count        int64
}

func (b *bucket) add(post domain.Post) {
	b.interactions += weightedInteractions(post)
	b.views += post.Views
	b.likes += post.Likes
	b.comments += post.Comments
	b.shares += post.Shares
	b.count++
}

func (b *bucket) stats() domain.EngagementStats {
	var stats domain.EngagementStats
	if b.count > 0 {
		n := float64(b.count)
		stats.Likes = utils.RoundToInt(float64(b.likes) / n)
		stats.Comments = utils.RoundToInt(float64(b.comments) / n)
		stats.Shares = utils.RoundToInt(float64(b.shares) / n)
		stats.Views = utils.RoundToInt(float64(b.views) / n)
	}
	if b.views > 0 {
		// ER do grupo ponderado pelas views, não a média dos ERs individuais
		stats.ER = utils.RoundWithTwoDecimalPlace(b.interactions / float64(b.views) * 100)
	}

	return stats
}

// AggregateEngagement separa os posts em orgânicos e de campanha e calcula as médias de cada grupo
func AggregateEngagement(posts []domain.Post) domain.AggregatedEngagement {
	var organic, campaign bucket

	for _, post := range posts {
		if post.Type == domain.PostTypeCampaign {
			campaign.add(post)
			continue
		}
		organic.add(post)
	}

	return domain.AggregatedEngagement{
		Organic:  organic.stats(),
		Campaign: campaign.stats(),
	}
}

// PostsWithER anota cada post com o seu ER, mantendo a ordem
func PostsWithER(posts []domain.Post) []domain.PostWithER {
	result := make([]domain.PostWithER, 0, len(posts))
	for _, post := range posts {
		result = append(result, domain.PostWithER{Post: post, ER: ERForPost(post)})
	}

	return result
}

// OverallER é o ER de todos os posts juntos, ponderado pelas views
func OverallER(posts []domain.Post) float64 {
	var all bucket
	for _, post := range posts {
		all.add(post)
	}

	return all.stats().ER
}

// PlatformsOf lista as plataformas presentes nos posts, na ordem de domain.Platforms
func PlatformsOf(posts []domain.Post) []domain.Platform {
	present := make(map[domain.Platform]struct{}, len(domain.Platforms))
	for _, post := range posts {
		present[post.Platform] = struct{}{}
	}

	platforms := make([]domain.Platform, 0, len(present))
	for _, p := range domain.Platforms {
		if _, ok := present[p]; ok {
			platforms = append(platforms, p)
		}
	}

	return platforms
}
