package dto

import (
	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
	"github.com/rafabene/pessoas-backend/internal/services"
)

// PessoaRequest é o contrato comum das requisições de criação das duas versões
type PessoaRequest interface {
	ToInput() services.PessoaInput
}

// EditarPessoaRequest é o contrato comum das requisições de edição
type EditarPessoaRequest interface {
	PessoaRequest
	PessoaID() string
}

// pessoaFields são os campos editáveis comuns a v1 e v2
type pessoaFields struct {
	Nome           string `json:"nome" example:"Maria Silva"`
	Email          string `json:"email" example:"maria@email.com"`
	DataNascimento string `json:"dataNascimento" example:"20/09/1998"`
	Cpf            string `json:"cpf" example:"123.456.789-00"`
	Sexo           *int   `json:"sexo" example:"2"`
	Nacionalidade  *int   `json:"nacionalidade" example:"1"`
	Naturalidade   string `json:"naturalidade" example:"SP"`
}

func (f pessoaFields) toInput(endereco string) services.PessoaInput {
	return services.PessoaInput{
		Nome:           f.Nome,
		Email:          f.Email,
		DataNascimento: f.DataNascimento,
		Cpf:            f.Cpf,
		Endereco:       endereco,
		Sexo:           f.Sexo,
		Nacionalidade:  f.Nacionalidade,
		Naturalidade:   f.Naturalidade,
	}
}

// AdicionarPessoaV1Request cria uma pessoa pela v1 (endereço opcional)
type AdicionarPessoaV1Request struct {
	pessoaFields
	Endereco string `json:"endereco"`
}

func (r AdicionarPessoaV1Request) ToInput() services.PessoaInput {
	return r.toInput(r.Endereco)
}

// EditarPessoaV1Request altera uma pessoa pela v1
type EditarPessoaV1Request struct {
	ID string `json:"id" binding:"required,uuid"`
	AdicionarPessoaV1Request
}

func (r EditarPessoaV1Request) PessoaID() string {
	return r.ID
}

// AdicionarPessoaV2Request cria uma pessoa pela v2 (endereço obrigatório)
type AdicionarPessoaV2Request struct {
	pessoaFields
	Endereco string `json:"endereco" binding:"required"`
}

func (r AdicionarPessoaV2Request) ToInput() services.PessoaInput {
	return r.toInput(r.Endereco)
}

// EditarPessoaV2Request altera uma pessoa pela v2
type EditarPessoaV2Request struct {
	ID string `json:"id" binding:"required,uuid"`
	AdicionarPessoaV2Request
}

func (r EditarPessoaV2Request) PessoaID() string {
	return r.ID
}

// PessoaResponse é a representação pública de uma Pessoa
type PessoaResponse struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	Cpf            string `json:"cpf"`
	Sexo           string `json:"sexo"`
	Nacionalidade  string `json:"nacionalidade"`
	Naturalidade   string `json:"naturalidade"`
	Endereco       string `json:"endereco"`
}

// PaginatedResponse é a resposta paginada {total, data}
type PaginatedResponse struct {
	Total int              `json:"total"`
	Data  []PessoaResponse `json:"data"`
}

// ToPessoaResponse converte a entidade; data de nascimento em dd/MM/yyyy
func ToPessoaResponse(p *entities.Pessoa) PessoaResponse {
	return PessoaResponse{
		ID:             p.ID,
		Nome:           p.Nome,
		Email:          p.Email,
		DataNascimento: p.DataNascimento.Format(services.DateLayout),
		Cpf:            p.Cpf,
		Sexo:           entities.SexoLabel(p.Sexo),
		Nacionalidade:  entities.NacionalidadeLabel(p.Nacionalidade),
		Naturalidade:   p.Naturalidade,
		Endereco:       p.Endereco,
	}
}

// ToPessoaResponses converte uma lista de entidades
func ToPessoaResponses(pessoas []*entities.Pessoa) []PessoaResponse {
	responses := make([]PessoaResponse, len(pessoas))
	for i, p := range pessoas {
		responses[i] = ToPessoaResponse(p)
	}
	return responses
}

// ToPaginatedResponse converte uma página do repositório
func ToPaginatedResponse(page repositories.PessoaPage) PaginatedResponse {
	return PaginatedResponse{
		Total: page.Total,
		Data:  ToPessoaResponses(page.Data),
	}
}

// PaginacaoQuery são os parâmetros do endpoint paginado
type PaginacaoQuery struct {
	Pagina          int `form:"pagina,default=1"`
	LinhasPorPagina int `form:"linhasPorPagina,default=10"`
}
