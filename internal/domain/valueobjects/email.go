package valueobjects

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxEmailLength é o tamanho máximo aceito para um email
const MaxEmailLength = 255

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email é um value object opcional: vazio é válido, preenchido precisa seguir local@dominio.tld
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, bool) {
	if strings.TrimSpace(email) == "" {
		return Email{}, true
	}

	if !IsValidEmail(email) {
		return Email{}, false
	}

	return Email{value: email}, true
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// IsEmpty indica se nenhum email foi informado
func (e Email) IsEmpty() bool {
	return e.value == ""
}

// IsValidEmail valida o formato e o tamanho de um email preenchido
func IsValidEmail(email string) bool {
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return false
	}
	return emailPattern.MatchString(email)
}
