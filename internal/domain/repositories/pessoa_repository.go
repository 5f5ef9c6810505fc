package repositories

import (
	"context"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
)

// PessoaRepository define a interface para persistência de pessoas
type PessoaRepository interface {
	List(ctx context.Context) ([]*entities.Pessoa, error)
	ListPaginated(ctx context.Context, pagina, linhasPorPagina int) (PessoaPage, error)
	FindByID(ctx context.Context, id string) (*entities.Pessoa, error)
	Create(ctx context.Context, pessoa *entities.Pessoa) error
	Update(ctx context.Context, pessoa *entities.Pessoa) error
	Delete(ctx context.Context, id string) (bool, error)
}

// PessoaPage é uma página de pessoas junto com o total de registros
type PessoaPage struct {
	Total int
	Data  []*entities.Pessoa
}
