package testprofiles

import (
	"math"

	"github.com/vfg2006/publimais-api/internal/domain"
)

// deriveMetrics calcula o snapshot a partir de seguidores e taxa de engajamento
func deriveMetrics(profile *domain.TestProfile, previousFollowers int64, caption string) *domain.TestMetrics {
	followers := float64(profile.FollowersCount)
	er := profile.EngagementRate

	topPost := domain.TopPost{
		Caption:  caption,
		Likes:    floor(followers * er * 1.5),
		Comments: floor(followers * er * 0.3),
	}
	if profile.Platform == domain.TestPlatformYouTube || profile.Platform == domain.TestPlatformTikTok {
		views := floor(followers * 4)
		topPost.Views = &views
	}

	return &domain.TestMetrics{
		TestProfileID:  profile.ID,
		FollowersCount: profile.FollowersCount,
		FollowingCount: profile.FollowingCount,
		PostsCount:     profile.PostsCount,
		EngagementRate: er,
		LikesAvg:       floor(followers * er * 0.8),
		CommentsAvg:    floor(followers * er * 0.15),
		ViewsAvg:       floor(followers * 2.5),
		ReachAvg:       floor(followers * 1.8),
		ImpressionsAvg: floor(followers * 3.2),
		ProfileViews:   floor(followers * 0.1),
		WebsiteClicks:  floor(followers * 0.02),
		Growth7d: domain.FollowersGrowth{
			Current:  profile.FollowersCount,
			Previous: previousFollowers,
		},
		TopPost: topPost,
	}
}

func floor(v float64) int64 {
	return int64(math.Floor(v))
}
