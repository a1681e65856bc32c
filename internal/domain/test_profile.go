package domain

import "time"

// TestPlatform inclui as redes aceitas pelo painel de testes do admin
type TestPlatform string

const (
	TestPlatformInstagram TestPlatform = "instagram"
	TestPlatformTikTok    TestPlatform = "tiktok"
	TestPlatformYouTube   TestPlatform = "youtube"
	TestPlatformTwitter   TestPlatform = "twitter"
	TestPlatformFacebook  TestPlatform = "facebook"
)

// TestProfile é um perfil fictício conectado por um administrador para validar a integração
type TestProfile struct {
	ID                string       `json:"id"`
	AdminUserID       int          `json:"admin_user_id"`
	Platform          TestPlatform `json:"platform"`
	Username          string       `json:"username"`
	DisplayName       string       `json:"display_name"`
	ProfilePictureURL string       `json:"profile_picture_url"`
	Bio               string       `json:"bio"`
	FollowersCount    int64        `json:"followers_count"`
	FollowingCount    int64        `json:"following_count"`
	PostsCount        int64        `json:"posts_count"`
	EngagementRate    float64      `json:"engagement_rate"`
	LastSyncAt        time.Time    `json:"last_sync_at"`
	CreatedAt         time.Time    `json:"created_at"`
}

type FollowersGrowth struct {
	Current  int64 `json:"current"`
	Previous int64 `json:"previous"`
}

type TopPost struct {
	Caption  string `json:"caption"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Views    *int64 `json:"views,omitempty"`
}

// TestMetrics é um snapshot das métricas derivadas do perfil de teste
type TestMetrics struct {
	ID             string          `json:"id"`
	TestProfileID  string          `json:"test_profile_id"`
	FollowersCount int64           `json:"followers_count"`
	FollowingCount int64           `json:"following_count"`
	PostsCount     int64           `json:"posts_count"`
	EngagementRate float64         `json:"engagement_rate"`
	LikesAvg       int64           `json:"likes_avg"`
	CommentsAvg    int64           `json:"comments_avg"`
	ViewsAvg       int64           `json:"views_avg"`
	ReachAvg       int64           `json:"reach_avg"`
	ImpressionsAvg int64           `json:"impressions_avg"`
	ProfileViews   int64           `json:"profile_views"`
	WebsiteClicks  int64           `json:"website_clicks"`
	Growth7d       FollowersGrowth `json:"growth_7d"`
	TopPost        TopPost         `json:"top_post"`
	CreatedAt      time.Time       `json:"created_at"`
}

// AdminLog registra cada chamada feita pelo painel de testes
type AdminLog struct {
	ID           string    `json:"id"`
	AdminUserID  int       `json:"admin_user_id"`
	Action       string    `json:"action"`
	Platform     *string   `json:"platform"`
	Endpoint     *string   `json:"endpoint"`
	RequestData  any       `json:"request_data"`
	ResponseData any       `json:"response_data"`
	ErrorMessage *string   `json:"error_message"`
	StatusCode   *int      `json:"status_code"`
	DurationMs   *int64    `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

type TestProfileWithMetrics struct {
	Profile *TestProfile `json:"profile"`
	Metrics *TestMetrics `json:"metrics"`
}
