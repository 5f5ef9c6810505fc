package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
)

// SeedUsuario descreve uma conta criada na carga inicial
type SeedUsuario struct {
	Email      string
	Senha      string
	Permissoes []entities.Permissao
}

var seedNomes = []string{
	"Maria Silva", "João Souza", "Ana Oliveira", "Pedro Santos", "Juliana Lima",
	"Carlos Pereira", "Fernanda Costa", "Lucas Almeida", "Patrícia Rocha", "Rafael Gomes",
	"Beatriz Martins", "Gabriel Ribeiro", "Camila Carvalho", "Thiago Ferreira", "Larissa Barbosa",
}

var seedNaturalidades = []string{"SP", "RJ", "MG", "BA", "RS"}

// SeedPessoas retorna as 15 pessoas de demonstração.
// Os CPFs seguem o padrão 123.456.789-01 até 123.456.789-15.
func SeedPessoas() []entities.PessoaInput {
	inputs := make([]entities.PessoaInput, 0, len(seedNomes))
	base := time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC)

	for i, nome := range seedNomes {
		sexo := entities.SexoMasculino
		if i%2 == 0 {
			sexo = entities.SexoFeminino
		}
		nacionalidade := entities.NacionalidadeBrasileira
		if i%5 == 4 {
			nacionalidade = entities.NacionalidadeEstrangeira
		}

		inputs = append(inputs, entities.PessoaInput{
			Nome:           nome,
			Email:          fmt.Sprintf("pessoa%02d@email.com", i+1),
			DataNascimento: base.AddDate(i, i%12, i),
			Cpf:            fmt.Sprintf("123.456.789-%02d", i+1),
			Endereco:       fmt.Sprintf("Rua %d, %d", i+1, 100+i),
			Sexo:           &sexo,
			Nacionalidade:  &nacionalidade,
			Naturalidade:   seedNaturalidades[i%len(seedNaturalidades)],
		})
	}

	return inputs
}

// SeedUsuarios retorna as contas de demonstração
func SeedUsuarios() []SeedUsuario {
	return []SeedUsuario{
		{Email: "admin@pessoas.com", Senha: "admin123", Permissoes: entities.AllPermissoes()},
		{Email: "leitor@pessoas.com", Senha: "leitor123", Permissoes: []entities.Permissao{entities.PermissaoVisualizarPessoa}},
	}
}

// Seeder popula um banco vazio com dados de demonstração
type Seeder struct {
	uow      ports.UnitOfWork
	pessoas  repositories.PessoaRepository
	usuarios repositories.UsuarioRepository
	hash     entities.PasswordHasher
	logger   ports.Logger
}

// NewSeeder cria um novo Seeder
func NewSeeder(
	uow ports.UnitOfWork,
	pessoas repositories.PessoaRepository,
	usuarios repositories.UsuarioRepository,
	hash entities.PasswordHasher,
	logger ports.Logger,
) *Seeder {
	return &Seeder{uow: uow, pessoas: pessoas, usuarios: usuarios, hash: hash, logger: logger}
}

// Seed insere pessoas e usuários numa única transação, apenas se ainda não houver pessoas
func (s *Seeder) Seed(ctx context.Context) error {
	return s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.pessoas.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			s.logger.Info("seed skipped", "pessoas", len(existing))
			return nil
		}

		// Datas de cadastro escalonadas para uma ordenação estável na paginação
		cadastro := time.Now().UTC().Add(-time.Duration(len(seedNomes)) * time.Minute)
		for _, input := range SeedPessoas() {
			pessoa, err := entities.NewPessoa(input)
			if err != nil {
				return fmt.Errorf("seed pessoa %s: %w", input.Nome, err)
			}
			pessoa.DataCadastro = cadastro
			cadastro = cadastro.Add(time.Minute)

			if err := s.pessoas.Create(ctx, pessoa); err != nil {
				return fmt.Errorf("seed pessoa %s: %w", input.Nome, err)
			}
		}

		for _, seed := range SeedUsuarios() {
			usuario, err := entities.NewUsuario(seed.Email, seed.Senha, s.hash, seed.Permissoes...)
			if err != nil {
				return fmt.Errorf("seed usuario %s: %w", seed.Email, err)
			}
			if err := s.usuarios.Create(ctx, usuario); err != nil {
				return fmt.Errorf("seed usuario %s: %w", seed.Email, err)
			}
		}

		s.logger.Info("seed completed",
			"pessoas", len(seedNomes),
			"usuarios", len(SeedUsuarios()),
		)
		return nil
	})
}
