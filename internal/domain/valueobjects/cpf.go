package valueobjects

import (
	"strings"
	"unicode/utf8"
)

// CPFLength é a quantidade de caracteres de um CPF normalizado
const CPFLength = 11

var cpfPunctuation = strings.NewReplacer(".", "", "-", "")

// CPF guarda o número já sem pontuação.
// Apenas a quantidade de caracteres é verificada, não os dígitos verificadores.
type CPF struct {
	value string
}

// NormalizeCPF remove pontos e hífens
func NormalizeCPF(cpf string) string {
	return cpfPunctuation.Replace(cpf)
}

// NewCPF normaliza e valida um CPF
func NewCPF(cpf string) (CPF, bool) {
	normalized := NormalizeCPF(cpf)

	if strings.TrimSpace(normalized) == "" {
		return CPF{}, false
	}

	if utf8.RuneCountInString(normalized) != CPFLength {
		return CPF{}, false
	}

	return CPF{value: normalized}, true
}

// String retorna o CPF normalizado
func (c CPF) String() string {
	return c.value
}
