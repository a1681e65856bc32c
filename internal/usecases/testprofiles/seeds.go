package testprofiles

import "github.com/vfg2006/publimais-api/internal/domain"

type profileSeed struct {
	Username          string
	DisplayName       string
	ProfilePictureURL string
	Bio               string
	FollowersCount    int64
	FollowingCount    int64
	PostsCount        int64
	EngagementRate    float64
}

// Dados fictícios usados ao conectar um perfil de teste
var seeds = map[domain.TestPlatform]profileSeed{
	domain.TestPlatformInstagram: {
		Username:          "admin_test_account",
		DisplayName:       "Admin Test Profile",
		ProfilePictureURL: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=faces",
		Bio:               "Perfil de teste para validação das APIs",
		FollowersCount:    15420,
		FollowingCount:    890,
		PostsCount:        234,
		EngagementRate:    0.045,
	},
	domain.TestPlatformTikTok: {
		Username:          "admin_tiktok_test",
		DisplayName:       "Admin TikTok Test",
		ProfilePictureURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=faces",
		Bio:               "Testando integração TikTok API",
		FollowersCount:    8750,
		FollowingCount:    123,
		PostsCount:        89,
		EngagementRate:    0.067,
	},
	domain.TestPlatformYouTube: {
		Username:          "AdminYouTubeTest",
		DisplayName:       "Admin YouTube Channel",
		ProfilePictureURL: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=faces",
		Bio:               "Canal de testes para validação da API do YouTube",
		FollowersCount:    3250,
		FollowingCount:    45,
		PostsCount:        12,
		EngagementRate:    0.089,
	},
	domain.TestPlatformTwitter: {
		Username:          "admin_x_test",
		DisplayName:       "Admin X Test",
		ProfilePictureURL: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=faces",
		Bio:               "Perfil de teste para integração com X (Twitter)",
		FollowersCount:    1840,
		FollowingCount:    234,
		PostsCount:        456,
		EngagementRate:    0.032,
	},
	domain.TestPlatformFacebook: {
		Username:          "admin.facebook.test",
		DisplayName:       "Admin Facebook Test",
		ProfilePictureURL: "https://images.unsplash.com/photo-1494790108755-2616b612b5bc?w=150&h=150&fit=crop&crop=faces",
		Bio:               "Página de teste para validação da API do Facebook",
		FollowersCount:    5670,
		FollowingCount:    67,
		PostsCount:        123,
		EngagementRate:    0.054,
	},
}
