package services

import (
	"strings"
	"time"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/errors"
)

// Formatos aceitos para data de nascimento; o primeiro é o formato de resposta
var dateLayouts = []string{"02/01/2006", "2006-01-02", time.RFC3339}

// DateLayout é o formato dd/MM/yyyy usado nas respostas
const DateLayout = "02/01/2006"

// PessoaInput são os dados de criação/edição vindos do transporte
type PessoaInput struct {
	Nome           string
	Email          string
	DataNascimento string
	Cpf            string
	Endereco       string
	Sexo           *int
	Nacionalidade  *int
	Naturalidade   string
}

// ParseDate interpreta a data em dd/MM/yyyy, yyyy-MM-dd ou RFC 3339
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// toEntityInput converte os dados brutos; uma data ilegível vira erro do campo dataNascimento
func (in PessoaInput) toEntityInput() (entities.PessoaInput, error) {
	out := entities.PessoaInput{
		Nome:         in.Nome,
		Email:        in.Email,
		Cpf:          in.Cpf,
		Endereco:     in.Endereco,
		Naturalidade: in.Naturalidade,
	}

	if in.Sexo != nil {
		v := entities.Sexo(*in.Sexo)
		out.Sexo = &v
	}
	if in.Nacionalidade != nil {
		v := entities.Nacionalidade(*in.Nacionalidade)
		out.Nacionalidade = &v
	}

	date, ok := ParseDate(in.DataNascimento)
	if !ok {
		return out, errors.NewFieldError(entities.FieldDataNascimento, "format")
	}
	out.DataNascimento = date

	return out, nil
}
