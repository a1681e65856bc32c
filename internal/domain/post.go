package domain

// Post representa um conteúdo publicado e suas interações
type Post struct {
	ID       int64    `json:"id" mapstructure:"id"`
	Title    string   `json:"title" mapstructure:"title"`
	Platform Platform `json:"platform" mapstructure:"platform"`
	Type     PostType `json:"type" mapstructure:"type"`
	Likes    int64    `json:"likes" mapstructure:"likes"`
	Comments int64    `json:"comments" mapstructure:"comments"`
	Shares   int64    `json:"shares" mapstructure:"shares"`
	Views    int64    `json:"views" mapstructure:"views"`
	Tags     []string `json:"tags,omitempty" mapstructure:"tags"`
}

// PostWithER é o post acompanhado da taxa de engajamento calculada
type PostWithER struct {
	Post
	ER float64 `json:"er"`
}

// PlatformWeights pondera likes, comentários e compartilhamentos no cálculo do ER
type PlatformWeights struct {
	Like    float64 `json:"like"`
	Comment float64 `json:"comment"`
	Share   float64 `json:"share"`
}

// EngagementStats são as médias de um grupo de posts
type EngagementStats struct {
	Likes    int64   `json:"likes"`
	Comments int64   `json:"comments"`
	Shares   int64   `json:"shares"`
	Views    int64   `json:"views"`
	ER       float64 `json:"er"`
}

// AggregatedEngagement separa os posts orgânicos dos de campanha
type AggregatedEngagement struct {
	Organic  EngagementStats `json:"organic"`
	Campaign EngagementStats `json:"campaign"`
}
