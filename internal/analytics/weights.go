package analytics

import "github.com/vfg2006/publimais-api/internal/domain"

// erWeights é a tabela fixa de pesos por plataforma
var erWeights = map[domain.Platform]domain.PlatformWeights{
	domain.PlatformInstagram: {Like: 1.0, Comment: 1.5, Share: 1.2},
	domain.PlatformTikTok:    {Like: 1.0, Comment: 1.2, Share: 2.0},
	domain.PlatformYouTube:   {Like: 1.0, Comment: 2.0, Share: 1.5},
}

// WeightsFor devolve os pesos da plataforma. Plataformas fora da tabela ficam com peso zero.
func WeightsFor(platform domain.Platform) domain.PlatformWeights {
	return erWeights[platform]
}

func weightedInteractions(post domain.Post) float64 {
	w := WeightsFor(post.Platform)
	return float64(post.Likes)*w.Like + float64(post.Comments)*w.Comment + float64(post.Shares)*w.Share
}
