package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// SessionIDSize é o tamanho dos ids de sessão
const SessionIDSize = 21

func GenerateID(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
