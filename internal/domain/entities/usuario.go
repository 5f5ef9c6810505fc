package entities

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/valueobjects"
)

const FieldSenha = "senha"

// PasswordHasher gera o hash persistido de uma senha
type PasswordHasher func(senha string) (string, error)

// Usuario representa uma conta com acesso à API
type Usuario struct {
	ID        string
	Email     string
	SenhaHash string
	Vinculos  []UsuarioPermissao
	CreatedAt time.Time
}

// NewUsuario valida email e senha e cria um usuário com as permissões informadas
func NewUsuario(email, senha string, hash PasswordHasher, permissoes ...Permissao) (*Usuario, error) {
	verr := &errors.ValidationError{}

	value, ok := valueobjects.NewEmail(email)
	if !ok {
		verr.Add(FieldEmail, "format")
	}

	verr.Merge(ValidateSenha(senha))

	if verr.HasErrors() {
		return nil, verr
	}

	senhaHash, err := hash(senha)
	if err != nil {
		return nil, err
	}

	u := &Usuario{
		ID:        uuid.NewString(),
		Email:     value.String(),
		SenhaHash: senhaHash,
		CreatedAt: now(),
	}
	for _, p := range permissoes {
		u.Grant(p)
	}

	return u, nil
}

// ValidateSenha exige senha preenchida contendo ao menos um dígito.
// TODO: aplicar o limite de 8 a 20 caracteres depois de confirmar que as contas existentes o respeitam.
func ValidateSenha(senha string) error {
	if senha == "" {
		return errors.NewFieldError(FieldSenha, "required")
	}

	if !strings.ContainsFunc(senha, unicode.IsDigit) {
		return errors.NewFieldError(FieldSenha, "digit")
	}

	return nil
}

// Grant adiciona uma permissão sem duplicar vínculos
func (u *Usuario) Grant(p Permissao) {
	if u.HasPermission(p) {
		return
	}
	u.Vinculos = append(u.Vinculos, UsuarioPermissao{UsuarioID: u.ID, Permissao: p})
}

// HasPermission verifica se o usuário tem uma permissão
func (u *Usuario) HasPermission(p Permissao) bool {
	for _, v := range u.Vinculos {
		if v.Permissao == p {
			return true
		}
	}
	return false
}

// Permissoes retorna as permissões do usuário
func (u *Usuario) Permissoes() []Permissao {
	result := make([]Permissao, len(u.Vinculos))
	for i, v := range u.Vinculos {
		result[i] = v.Permissao
	}
	return result
}
