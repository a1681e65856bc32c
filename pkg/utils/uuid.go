package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 12

// GenerateID gera os IDs curtos usados nas tabelas da aplicação
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// GeneratePublicID gera o identificador hexadecimal dos relatórios compartilhados
func GeneratePublicID() (string, error) {
	return gonanoid.Generate("0123456789abcdef", 32)
}
