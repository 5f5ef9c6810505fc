package client

type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// Pessoa é uma pessoa como devolvida pela API; sexo e nacionalidade vêm como rótulos
type Pessoa struct {
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

// PessoaRequest é o corpo de criação e edição. ID só é usado na edição.
type PessoaRequest struct {
	ID             string `json:"id,omitempty"`
	Nome           string `json:"nome"`
	Email          string `json:"email"`
	DataNascimento string `json:"dataNascimento"`
	Cpf            string `json:"cpf"`
	Sexo           *int   `json:"sexo,omitempty"`
	Nacionalidade  *int   `json:"nacionalidade,omitempty"`
	Naturalidade   string `json:"naturalidade"`
	Endereco       string `json:"endereco"`
}

// Page é o resultado da listagem paginada
type Page struct {
	Total int      `json:"total"`
	Data  []Pessoa `json:"data"`
}
