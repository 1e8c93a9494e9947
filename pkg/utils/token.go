package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateToken gera um token opaco para confirmação de e-mail e
// redefinição de senha
func GenerateToken() (string, error) {
	return gonanoid.Generate(characters, 32)
}
