package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrPessoaNotFound     = errors.New("error.pessoa_not_found")
	ErrCpfAlreadyExists   = errors.New("error.cpf_already_exists")
	ErrDeleteFailed       = errors.New("error.delete_failed")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeTooMany      = "/problems/too-many-requests"
)

// MessageValidationFields é o message ID usado para erros de validação de campos
const MessageValidationFields = "error.validation.fields"

// FieldError identifica um campo que falhou na validação de domínio
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError agrega todos os campos inválidos de uma operação de domínio
type ValidationError struct {
	Fields []FieldError
}

// NewFieldError cria um ValidationError com um único campo
func NewFieldError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Add acumula um campo inválido
func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

// Merge incorpora os campos de outro erro de validação, se houver
func (e *ValidationError) Merge(err error) {
	var other *ValidationError
	if errors.As(err, &other) {
		e.Fields = append(e.Fields, other.Fields...)
	}
}

// HasErrors indica se algum campo foi registrado
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// FieldNames retorna os nomes dos campos inválidos na ordem em que foram registrados
func (e *ValidationError) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return names
}

func (e *ValidationError) Error() string {
	return "domain validation failed: " + strings.Join(e.FieldNames(), ", ")
}

// IsValidation verifica se err é (ou embrulha) um ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
