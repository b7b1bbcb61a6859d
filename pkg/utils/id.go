package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateTokenID gera um identificador curto para o claim jti dos tokens
func GenerateTokenID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
