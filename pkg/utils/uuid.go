package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const batchRefAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto para referenciar lotes de execução
func GenerateID() (string, error) {
	return gonanoid.Generate(batchRefAlphabet, 8)
}
