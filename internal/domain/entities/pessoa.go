package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/valueobjects"
)

// Limites de tamanho dos campos de Pessoa
const (
	MaxNomeLength     = 100
	MaxEnderecoLength = 255
)

// Nomes dos campos usados nos erros de validação
const (
	FieldNome           = "nome"
	FieldEmail          = "email"
	FieldDataNascimento = "dataNascimento"
	FieldCpf            = "cpf"
	FieldEndereco       = "endereco"
)

// now é o relógio usado nas validações de data (sempre UTC)
var now = func() time.Time {
	return time.Now().UTC()
}

// Pessoa representa uma pessoa cadastrada
type Pessoa struct {
	ID              string
	Nome            string
	Email           string
	DataNascimento  time.Time
	Cpf             string
	Endereco        string
	Sexo            *Sexo
	Nacionalidade   *Nacionalidade
	Naturalidade    string
	DataCadastro    time.Time
	DataAtualizacao *time.Time
}

// PessoaInput contém os dados brutos usados para criar ou alterar uma Pessoa
type PessoaInput struct {
	Nome           string
	Email          string
	DataNascimento time.Time
	Cpf            string
	Endereco       string
	Sexo           *Sexo
	Nacionalidade  *Nacionalidade
	Naturalidade   string
}

// NewPessoa valida todos os campos e cria uma nova Pessoa.
// Em caso de falha retorna um *errors.ValidationError com todos os campos inválidos.
func NewPessoa(input PessoaInput) (*Pessoa, error) {
	p := &Pessoa{}
	if err := p.Apply(input); err != nil {
		return nil, err
	}

	p.ID = uuid.NewString()
	p.DataCadastro = now()

	return p, nil
}

// Apply valida todos os campos antes de alterar a Pessoa.
// Se algum campo for inválido, nenhum valor é alterado.
func (p *Pessoa) Apply(input PessoaInput) error {
	candidate := *p
	verr := &errors.ValidationError{}

	verr.Merge(candidate.SetNome(input.Nome))
	verr.Merge(candidate.SetEmail(input.Email))
	verr.Merge(candidate.SetDataNascimento(input.DataNascimento))
	verr.Merge(candidate.SetCpf(input.Cpf))
	verr.Merge(candidate.SetEndereco(input.Endereco))
	candidate.SetSexo(input.Sexo)
	candidate.SetNacionalidade(input.Nacionalidade)
	candidate.SetNaturalidade(input.Naturalidade)

	if verr.HasErrors() {
		return verr
	}

	*p = candidate
	return nil
}

// SetNome exige nome preenchido com até 100 caracteres
func (p *Pessoa) SetNome(nome string) error {
	if strings.TrimSpace(nome) == "" {
		return errors.NewFieldError(FieldNome, "required")
	}

	if utf8.RuneCountInString(nome) > MaxNomeLength {
		return errors.NewFieldError(FieldNome, "max_length")
	}

	p.Nome = nome
	return nil
}

// SetEmail aceita vazio; preenchido precisa ter até 255 caracteres e formato válido
func (p *Pessoa) SetEmail(email string) error {
	value, ok := valueobjects.NewEmail(email)
	if !ok {
		return errors.NewFieldError(FieldEmail, "format")
	}

	p.Email = value.String()
	return nil
}

// SetDataNascimento rejeita datas posteriores ao instante atual
func (p *Pessoa) SetDataNascimento(dataNascimento time.Time) error {
	if dataNascimento.After(now()) {
		return errors.NewFieldError(FieldDataNascimento, "future")
	}

	p.DataNascimento = dataNascimento.UTC()
	return nil
}

// SetCpf normaliza o CPF e exige 11 caracteres
func (p *Pessoa) SetCpf(cpf string) error {
	value, ok := valueobjects.NewCPF(cpf)
	if !ok {
		return errors.NewFieldError(FieldCpf, "length")
	}

	p.Cpf = value.String()
	return nil
}

// SetEndereco aceita vazio ou até 255 caracteres
func (p *Pessoa) SetEndereco(endereco string) error {
	if utf8.RuneCountInString(endereco) > MaxEnderecoLength {
		return errors.NewFieldError(FieldEndereco, "max_length")
	}

	p.Endereco = endereco
	return nil
}

func (p *Pessoa) SetSexo(sexo *Sexo) {
	p.Sexo = sexo
}

func (p *Pessoa) SetNacionalidade(nacionalidade *Nacionalidade) {
	p.Nacionalidade = nacionalidade
}

func (p *Pessoa) SetNaturalidade(naturalidade string) {
	p.Naturalidade = naturalidade
}

// Touch registra a data da última atualização
func (p *Pessoa) Touch(at time.Time) {
	at = at.UTC()
	p.DataAtualizacao = &at
}
