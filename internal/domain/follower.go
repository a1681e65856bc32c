package domain

// FollowerPoint é a contagem de seguidores em um período (mês, semana...)
type FollowerPoint struct {
	Month     string `json:"month" mapstructure:"month"`
	Followers int64  `json:"followers" mapstructure:"followers"`
	Date      string `json:"date,omitempty" mapstructure:"date"`
}

// GrowthPoint acrescenta a variação em relação ao ponto anterior
type GrowthPoint struct {
	FollowerPoint
	Delta int64   `json:"delta"`
	Pct   float64 `json:"pct"`
}

// GrowthPeaks traz a série anotada e o ponto de maior crescimento
type GrowthPeaks struct {
	Top    *GrowthPoint  `json:"top"`
	Series []GrowthPoint `json:"series"`
}
