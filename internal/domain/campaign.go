package domain

// Campaign agrega os números de uma campanha patrocinada
type Campaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Budget      float64 `json:"budget"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	Posts       []int64 `json:"posts"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	EMV         float64 `json:"emv"`
	PromoCode   *string `json:"promo_code,omitempty"`
}

// CampaignKPIs são os indicadores de funil calculados a partir da campanha
type CampaignKPIs struct {
	CPC  float64 `json:"cpc"`
	CPM  float64 `json:"cpm"`
	CTR  float64 `json:"ctr"`
	CR   float64 `json:"cr"`
	ROAS float64 `json:"roas"`
}

// CampaignDetail é a campanha com KPIs e o desempenho de cada post
type CampaignDetail struct {
	Campaign Campaign     `json:"campaign"`
	KPIs     CampaignKPIs `json:"kpis"`
	Posts    []PostWithER `json:"posts"`
}
