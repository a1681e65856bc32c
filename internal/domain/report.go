package domain

import "time"

type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatPDF  ReportFormat = "pdf"
)

const ReportTypePortfolio = "professional_portfolio"

// ReportRequest tem como padrão json, com pacotes e 7 dias de validade
type ReportRequest struct {
	Format          ReportFormat `json:"format"`
	IncludePackages *bool        `json:"include_packages"`
	ExpirationDays  int          `json:"expiration_days"`
}

type ReportProfile struct {
	DisplayName string  `json:"display_name"`
	Bio         *string `json:"bio"`
	Location    *string `json:"location"`
	Niche       *string `json:"niche"`
	Website     *string `json:"website"`
	AvatarURL   *string `json:"avatar_url"`
}

type ReportSummary struct {
	TotalFollowers    int64      `json:"total_followers"`
	AvgEngagementRate float64    `json:"avg_engagement_rate"`
	TotalPosts        int        `json:"total_posts"`
	ConnectedAccounts int        `json:"connected_accounts"`
	Platforms         []Platform `json:"platforms"`
}

// ReportData é o conteúdo do portfólio, persistido como JSONB ao compartilhar
type ReportData struct {
	Profile     ReportProfile        `json:"profile"`
	Summary     ReportSummary        `json:"summary"`
	Engagement  AggregatedEngagement `json:"engagement"`
	GrowthPeak  *GrowthPoint         `json:"growth_peak"`
	Campaigns   []CampaignDetail     `json:"campaigns"`
	AdPackages  []*AdPackage         `json:"ad_packages"`
	GeneratedAt time.Time            `json:"generated_at"`
	ReportType  string               `json:"report_type"`
}

type ReportResponse struct {
	Message string      `json:"message,omitempty"`
	Data    *ReportData `json:"data"`
}

type SharedReport struct {
	ID         string      `json:"id"`
	UserID     int         `json:"user_id"`
	PublicID   string      `json:"public_id"`
	ReportData *ReportData `json:"report_data"`
	ViewsCount int         `json:"views_count"`
	ExpiresAt  time.Time   `json:"expires_at"`
	CreatedAt  time.Time   `json:"created_at"`
}

type ShareReportResponse struct {
	Message   string    `json:"message"`
	PublicID  string    `json:"public_id"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}
