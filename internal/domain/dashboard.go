package domain

// Dashboard reúne todos os indicadores exibidos no painel do influenciador
type Dashboard struct {
	Engagement AggregatedEngagement `json:"engagement"`
	Growth     GrowthPeaks          `json:"growth"`
	Campaigns  []CampaignDetail     `json:"campaigns"`
	Posts      []PostWithER         `json:"posts"`
}
