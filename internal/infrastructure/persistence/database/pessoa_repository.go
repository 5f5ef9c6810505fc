package database

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
)

// PessoaRepository implementa repositories.PessoaRepository
type PessoaRepository struct {
	db *gorm.DB
	// serializa a verificação de CPF e a escrita
	writeMu sync.Mutex
}

// NewPessoaRepository cria um novo PessoaRepository
func NewPessoaRepository(db *gorm.DB) repositories.PessoaRepository {
	return &PessoaRepository{db: db}
}

func (r *PessoaRepository) List(ctx context.Context) ([]*entities.Pessoa, error) {
	var models []*PessoaModel

	if err := conn(ctx, r.db).Find(&models).Error; err != nil {
		return nil, err
	}

	return toPessoaEntities(models), nil
}

// ListPaginated ordena por data de cadastro (mais recentes primeiro) e pula pagina*linhasPorPagina registros
func (r *PessoaRepository) ListPaginated(ctx context.Context, pagina, linhasPorPagina int) (repositories.PessoaPage, error) {
	db := conn(ctx, r.db)

	var total int64
	if err := db.Model(&PessoaModel{}).Count(&total).Error; err != nil {
		return repositories.PessoaPage{}, err
	}

	// tamanho de página zero ou negativo não traz linhas, só o total
	if linhasPorPagina <= 0 {
		return repositories.PessoaPage{Total: int(total), Data: []*entities.Pessoa{}}, nil
	}
	if pagina < 0 {
		pagina = 0
	}

	var models []*PessoaModel
	err := db.
		Order("data_cadastro DESC").
		Order("id").
		Offset(pagina * linhasPorPagina).
		Limit(linhasPorPagina).
		Find(&models).Error
	if err != nil {
		return repositories.PessoaPage{}, err
	}

	return repositories.PessoaPage{
		Total: int(total),
		Data:  toPessoaEntities(models),
	}, nil
}

func (r *PessoaRepository) FindByID(ctx context.Context, id string) (*entities.Pessoa, error) {
	var model PessoaModel

	if err := conn(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toPessoaEntity(&model), nil
}

func (r *PessoaRepository) Create(ctx context.Context, pessoa *entities.Pessoa) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	model := toPessoaModel(pessoa)

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		exists, err := cpfTaken(tx, pessoa.Cpf, "")
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrCpfAlreadyExists
		}

		return tx.Create(model).Error
	})

	return translateWriteError(err)
}

func (r *PessoaRepository) Update(ctx context.Context, pessoa *entities.Pessoa) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		exists, err := cpfTaken(tx, pessoa.Cpf, pessoa.ID)
		if err != nil {
			return err
		}
		if exists {
			return domainerrors.ErrCpfAlreadyExists
		}

		pessoa.Touch(time.Now())
		model := toPessoaModel(pessoa)

		result := tx.Model(&PessoaModel{ID: pessoa.ID}).
			Select("*").
			Omit("id", "data_cadastro").
			Updates(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrPessoaNotFound
		}
		return nil
	})

	return translateWriteError(err)
}

func (r *PessoaRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	result := conn(ctx, r.db).Where("id = ?", id).Delete(&PessoaModel{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// cpfTaken verifica se o CPF pertence a outra pessoa (exceptID vazio considera todas)
func cpfTaken(tx *gorm.DB, cpf, exceptID string) (bool, error) {
	query := tx.Model(&PessoaModel{}).Where("cpf = ?", cpf)
	if exceptID != "" {
		query = query.Where("id <> ?", exceptID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrCpfAlreadyExists
	}
	return err
}

// Conversores
func toPessoaModel(p *entities.Pessoa) *PessoaModel {
	model := &PessoaModel{
		ID:              p.ID,
		Nome:            p.Nome,
		Email:           p.Email,
		DataNascimento:  p.DataNascimento,
		Cpf:             p.Cpf,
		Endereco:        p.Endereco,
		Naturalidade:    p.Naturalidade,
		DataCadastro:    p.DataCadastro,
		DataAtualizacao: p.DataAtualizacao,
	}

	if p.Sexo != nil {
		v := int(*p.Sexo)
		model.Sexo = &v
	}
	if p.Nacionalidade != nil {
		v := int(*p.Nacionalidade)
		model.Nacionalidade = &v
	}

	return model
}

func toPessoaEntity(model *PessoaModel) *entities.Pessoa {
	p := &entities.Pessoa{
		ID:              model.ID,
		Nome:            model.Nome,
		Email:           model.Email,
		DataNascimento:  model.DataNascimento.UTC(),
		Cpf:             model.Cpf,
		Endereco:        model.Endereco,
		Naturalidade:    model.Naturalidade,
		DataCadastro:    model.DataCadastro.UTC(),
		DataAtualizacao: model.DataAtualizacao,
	}

	if model.Sexo != nil {
		v := entities.Sexo(*model.Sexo)
		p.Sexo = &v
	}
	if model.Nacionalidade != nil {
		v := entities.Nacionalidade(*model.Nacionalidade)
		p.Nacionalidade = &v
	}

	return p
}

func toPessoaEntities(models []*PessoaModel) []*entities.Pessoa {
	result := make([]*entities.Pessoa, 0, len(models))
	for _, model := range models {
		result = append(result, toPessoaEntity(model))
	}
	return result
}
