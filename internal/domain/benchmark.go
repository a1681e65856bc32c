package domain

// SimilarProfile é um perfil de referência usado no comparativo de mercado
type SimilarProfile struct {
	Handle    string   `json:"handle"`
	ER        float64  `json:"er"`
	AvgViews  int64    `json:"avg_views"`
	Followers int64    `json:"followers"`
	Platform  Platform `json:"platform"`
	Country   string   `json:"country"`
	Niches    []string `json:"niches"`
}

// FollowersBand define as faixas de seguidores do filtro de benchmark
type FollowersBand string

const (
	FollowersBandAny       FollowersBand = "any"
	FollowersBandUnder100k FollowersBand = "<100k"
	FollowersBand100To300k FollowersBand = "100-300k"
	FollowersBand300kTo1M  FollowersBand = "300-1M"
	FollowersBandOver1M    FollowersBand = ">1M"
)

// BenchmarkFilter usa "any" (ou vazio) para não filtrar
type BenchmarkFilter struct {
	Platform      Platform      `json:"platform"`
	FollowersBand FollowersBand `json:"followers_band"`
	Country       string        `json:"country"`
	Niche         string        `json:"niche"`
}
