package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Platform identifica a rede social de origem de um post
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
)

// Platforms lista as plataformas suportadas pelo cálculo de engajamento
var Platforms = []Platform{PlatformInstagram, PlatformTikTok, PlatformYouTube}

// ParsePlatform aceita o nome da plataforma sem diferenciar maiúsculas
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
	}
	return p, nil
}

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube:
		return true
	}
	return false
}

func (p Platform) String() string { return string(p) }

func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p *Platform) UnmarshalText(text []byte) error {
	parsed, err := ParsePlatform(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Scan valida o valor vindo do banco
func (p *Platform) Scan(src any) error {
	return scanLabel(src, p.UnmarshalText)
}

func (p Platform) Value() (driver.Value, error) {
	return string(p), nil
}

// PostType separa conteúdo orgânico de conteúdo patrocinado
type PostType string

const (
	PostTypeOrganic  PostType = "organic"
	PostTypeCampaign PostType = "campaign"
)

// ParsePostType aceita também os rótulos legados em português ("orgânico", "campanha")
func ParsePostType(s string) (PostType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "organic", "orgânico", "organico":
		return PostTypeOrganic, nil
	case "campaign", "campanha":
		return PostTypeCampaign, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPostType, s)
}

func (t PostType) Valid() bool {
	return t == PostTypeOrganic || t == PostTypeCampaign
}

func (t PostType) String() string { return string(t) }

func (t PostType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *PostType) UnmarshalText(text []byte) error {
	parsed, err := ParsePostType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *PostType) Scan(src any) error {
	return scanLabel(src, t.UnmarshalText)
}

func (t PostType) Value() (driver.Value, error) {
	return string(t), nil
}

func scanLabel(src any, unmarshal func([]byte) error) error {
	switch v := src.(type) {
	case string:
		return unmarshal([]byte(v))
	case []byte:
		return unmarshal(v)
	case nil:
		return fmt.Errorf("valor nulo não suportado")
	default:
		return fmt.Errorf("tipo não suportado: %T", src)
	}
}
