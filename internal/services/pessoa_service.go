package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
)

// PessoaService orquestra o cadastro de pessoas
type PessoaService struct {
	repo      repositories.PessoaRepository
	publisher ports.EventPublisher
	logger    ports.Logger
}

// NewPessoaService cria um novo PessoaService; publisher pode ser nil
func NewPessoaService(
	repo repositories.PessoaRepository,
	publisher ports.EventPublisher,
	logger ports.Logger,
) *PessoaService {
	return &PessoaService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// List retorna todas as pessoas, sem ordem definida
func (s *PessoaService) List(ctx context.Context) ([]*entities.Pessoa, error) {
	return s.repo.List(ctx)
}

// ListPaginated repassa pagina e linhasPorPagina ao repositório sem ajuste de índice
func (s *PessoaService) ListPaginated(ctx context.Context, pagina, linhasPorPagina int) (repositories.PessoaPage, error) {
	return s.repo.ListPaginated(ctx, pagina, linhasPorPagina)
}

// Get busca uma pessoa por ID
func (s *PessoaService) Get(ctx context.Context, id string) (*entities.Pessoa, error) {
	pessoa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pessoa == nil {
		return nil, errors.ErrPessoaNotFound
	}
	return pessoa, nil
}

// Create valida os dados e cadastra uma nova pessoa
func (s *PessoaService) Create(ctx context.Context, input PessoaInput) (*entities.Pessoa, error) {
	verr := &errors.ValidationError{}

	data, err := input.toEntityInput()
	verr.Merge(err)

	pessoa, err := entities.NewPessoa(data)
	verr.Merge(err)

	if verr.HasErrors() {
		s.logger.Debug("pessoa rejected", "fields", verr.FieldNames())
		return nil, verr
	}

	if err := s.repo.Create(ctx, pessoa); err != nil {
		return nil, err
	}

	s.logger.Info("pessoa created", "id", pessoa.ID)
	s.publish(ctx, ports.PessoaCriada, pessoa.ID, pessoa.Nome)

	return pessoa, nil
}

// Update substitui todos os campos editáveis da pessoa
func (s *PessoaService) Update(ctx context.Context, id string, input PessoaInput) (*entities.Pessoa, error) {
	pessoa, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	verr := &errors.ValidationError{}

	data, err := input.toEntityInput()
	verr.Merge(err)

	if err := pessoa.Apply(data); err != nil {
		verr.Merge(err)
	}

	if verr.HasErrors() {
		s.logger.Debug("pessoa update rejected", "id", id, "fields", verr.FieldNames())
		return nil, verr
	}

	if err := s.repo.Update(ctx, pessoa); err != nil {
		return nil, err
	}

	s.logger.Info("pessoa updated", "id", pessoa.ID)
	s.publish(ctx, ports.PessoaAtualizada, pessoa.ID, pessoa.Nome)

	return pessoa, nil
}

// Delete remove a pessoa. Falhas inesperadas do repositório viram ErrDeleteFailed.
func (s *PessoaService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("failed to delete pessoa", "id", id, "error", err)
		return fmt.Errorf("%w: %w", errors.ErrDeleteFailed, err)
	}
	if !deleted {
		return errors.ErrPessoaNotFound
	}

	s.logger.Info("pessoa deleted", "id", id)
	s.publish(ctx, ports.PessoaRemovida, id, "")

	return nil
}

func (s *PessoaService) publish(ctx context.Context, eventType ports.PessoaEventType, id, nome string) {
	if s.publisher == nil {
		return
	}

	event := ports.PessoaEvent{
		Type:     eventType,
		PessoaID: id,
		Nome:     nome,
		At:       time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish pessoa event", "type", eventType, "id", id, "error", err)
	}
}
