package domain

import "errors"

var (
	ErrUnknownPlatform = errors.New("plataforma desconhecida")
	ErrUnknownPostType = errors.New("tipo de post desconhecido")
)
