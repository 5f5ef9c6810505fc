package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/logging"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/persistence/database"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/security"
	"github.com/rafabene/pessoas-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx     context.Context
		service *services.AuthService
	)

	BeforeEach(func() {
		ctx = context.Background()

		db, err := database.NewInMemory(logging.Discard())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			sqlDB, _ := db.DB()
			_ = sqlDB.Close()
		})

		usuarios := database.NewUsuarioRepository(db)
		leitor, err := entities.NewUsuario("leitor@pessoas.com", "leitor123", security.HashPassword, entities.PermissaoVisualizarPessoa)
		Expect(err).NotTo(HaveOccurred())
		Expect(usuarios.Create(ctx, leitor)).To(Succeed())

		service = services.NewAuthService(usuarios, security.NewTokenManager("segredo", 8*time.Hour), logging.Discard())
	})

	It("emite token com as permissões do usuário", func() {
		token, err := service.Authenticate(ctx, "leitor@pessoas.com", "leitor123")
		Expect(err).NotTo(HaveOccurred())
		Expect(token.ExpiresAt).To(BeTemporally("~", time.Now().Add(8*time.Hour), time.Minute))

		claims, err := service.ParseToken(token.Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims.Email).To(Equal("leitor@pessoas.com"))
		Expect(claims.HasPermission(entities.PermissaoVisualizarPessoa)).To(BeTrue())
		Expect(claims.HasPermission(entities.PermissaoRemoverPessoa)).To(BeFalse())
	})

	DescribeTable("rejeita credenciais inválidas",
		func(email, senha string) {
			_, err := service.Authenticate(ctx, email, senha)
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		},
		Entry("senha errada", "leitor@pessoas.com", "errada1"),
		Entry("usuário inexistente", "ninguem@pessoas.com", "leitor123"),
		Entry("campos vazios", "", ""),
	)

	It("rejeita token inválido como não autorizado", func() {
		_, err := service.ParseToken("lixo")
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))

		_, err = service.ParseToken("")
		Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
	})
})
