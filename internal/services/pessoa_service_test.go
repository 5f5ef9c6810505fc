package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/domain/repositories"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/logging"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/persistence/database"
	"github.com/rafabene/pessoas-backend/internal/services"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.PessoaEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.PessoaEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []ports.PessoaEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]ports.PessoaEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

// failingDelete simula uma falha inesperada do armazenamento
type failingDelete struct {
	repositories.PessoaRepository
}

func (failingDelete) Delete(context.Context, string) (bool, error) {
	return false, errors.New("disk on fire")
}

func validInput() services.PessoaInput {
	sexo := 2
	return services.PessoaInput{
		Nome:           "Ana Souza",
		Email:          "ana@email.com",
		DataNascimento: "20/09/1998",
		Cpf:            "123.456.789-00",
		Endereco:       "Rua A, 10",
		Sexo:           &sexo,
		Naturalidade:   "SP",
	}
}

var _ = Describe("PessoaService", func() {
	var (
		ctx       context.Context
		db        *gorm.DB
		repo      repositories.PessoaRepository
		publisher *recordingPublisher
		service   *services.PessoaService
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = database.NewInMemory(logging.Discard())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			sqlDB, err := db.DB()
			Expect(err).NotTo(HaveOccurred())
			Expect(sqlDB.Close()).To(Succeed())
		})

		repo = database.NewPessoaRepository(db)
		publisher = &recordingPublisher{}
		service = services.NewPessoaService(repo, publisher, logging.Discard())
	})

	Describe("Create", func() {
		It("cadastra uma pessoa válida com CPF normalizado", func() {
			pessoa, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			Expect(pessoa.ID).NotTo(BeEmpty())
			Expect(pessoa.Cpf).To(Equal("12345678900"))
			Expect(pessoa.DataNascimento).To(Equal(time.Date(1998, 9, 20, 0, 0, 0, 0, time.UTC)))

			found, err := service.Get(ctx, pessoa.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Nome).To(Equal("Ana Souza"))
			Expect(publisher.types()).To(Equal([]ports.PessoaEventType{ports.PessoaCriada}))
		})

		It("aceita data no formato ISO", func() {
			input := validInput()
			input.DataNascimento = "1998-09-20"

			pessoa, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(pessoa.DataNascimento.Format(services.DateLayout)).To(Equal("20/09/1998"))
		})

		It("aceita email vazio", func() {
			input := validInput()
			input.Email = ""

			pessoa, err := service.Create(ctx, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(pessoa.Email).To(BeEmpty())
		})

		It("lista todos os campos inválidos e não persiste nada", func() {
			input := validInput()
			input.Nome = strings.Repeat("a", 101)
			input.Email = "sem-arroba"
			input.DataNascimento = "31/02/abc"
			input.Cpf = "123.123.123.222.1"

			_, err := service.Create(ctx, input)

			var verr *domainerrors.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
			Expect(verr.FieldNames()).To(ConsistOf("nome", "email", "dataNascimento", "cpf"))

			all, err := service.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
			Expect(publisher.types()).To(BeEmpty())
		})

		It("rejeita data de nascimento no futuro", func() {
			input := validInput()
			input.DataNascimento = time.Now().UTC().AddDate(0, 0, 2).Format(services.DateLayout)

			_, err := service.Create(ctx, input)
			Expect(domainerrors.IsValidation(err)).To(BeTrue())
		})

		It("rejeita CPF duplicado após normalização", func() {
			_, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Nome = "Outra Pessoa"
			input.Cpf = "12345678900"

			_, err = service.Create(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrCpfAlreadyExists))
		})

		It("não falha quando o publicador falha", func() {
			publisher.err = errors.New("broker down")

			_, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("Update", func() {
		var ana string

		BeforeEach(func() {
			pessoa, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())
			ana = pessoa.ID
		})

		It("atualiza mantendo o próprio CPF", func() {
			input := validInput()
			input.Nome = "Ana Atualizada"

			pessoa, err := service.Update(ctx, ana, input)
			Expect(err).NotTo(HaveOccurred())
			Expect(pessoa.Nome).To(Equal("Ana Atualizada"))
			Expect(pessoa.DataAtualizacao).NotTo(BeNil())
			Expect(publisher.types()).To(Equal([]ports.PessoaEventType{ports.PessoaCriada, ports.PessoaAtualizada}))
		})

		It("rejeita CPF de outra pessoa", func() {
			outra := validInput()
			outra.Cpf = "987.654.321-00"
			_, err := service.Create(ctx, outra)
			Expect(err).NotTo(HaveOccurred())

			input := validInput()
			input.Cpf = "98765432100"

			_, err = service.Update(ctx, ana, input)
			Expect(err).To(MatchError(domainerrors.ErrCpfAlreadyExists))
		})

		It("retorna não encontrado para id inexistente", func() {
			_, err := service.Update(ctx, "00000000-0000-0000-0000-000000000000", validInput())
			Expect(err).To(MatchError(domainerrors.ErrPessoaNotFound))
		})

		It("mantém os valores anteriores quando a validação falha", func() {
			input := validInput()
			input.Nome = " "

			_, err := service.Update(ctx, ana, input)
			Expect(domainerrors.IsValidation(err)).To(BeTrue())

			found, err := service.Get(ctx, ana)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Nome).To(Equal("Ana Souza"))
		})
	})

	Describe("Delete", func() {
		It("remove e depois retorna não encontrado", func() {
			pessoa, err := service.Create(ctx, validInput())
			Expect(err).NotTo(HaveOccurred())

			Expect(service.Delete(ctx, pessoa.ID)).To(Succeed())

			_, err = service.Get(ctx, pessoa.ID)
			Expect(err).To(MatchError(domainerrors.ErrPessoaNotFound))
			Expect(publisher.types()).To(ContainElement(ports.PessoaRemovida))
		})

		It("falha para id inexistente", func() {
			err := service.Delete(ctx, "inexistente")
			Expect(err).To(MatchError(domainerrors.ErrPessoaNotFound))
		})

		It("embrulha falhas inesperadas como ErrDeleteFailed", func() {
			broken := services.NewPessoaService(failingDelete{repo}, nil, logging.Discard())

			err := broken.Delete(ctx, "qualquer")
			Expect(errors.Is(err, domainerrors.ErrDeleteFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("disk on fire"))
		})
	})

	Describe("ListPaginated", func() {
		BeforeEach(func() {
			seeder := database.NewSeeder(
				database.NewUnitOfWork(db),
				repo,
				database.NewUsuarioRepository(db),
				func(s string) (string, error) { return s, nil },
				logging.Discard(),
			)
			Expect(seeder.Seed(ctx)).To(Succeed())
		})

		It("pula pagina*linhasPorPagina registros", func() {
			page, err := service.ListPaginated(ctx, 1, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Total).To(Equal(15))
			Expect(page.Data).To(HaveLen(5))
			Expect(page.Data[0].Nome).To(Equal("Rafael Gomes"))
		})
	})
})
