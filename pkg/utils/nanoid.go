package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera os IDs de 6 caracteres usados como chave primária das
// linhas criadas pelo seed.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
