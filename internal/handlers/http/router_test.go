package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/pessoas-backend/internal/handlers/http"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/i18n"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/logging"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/metrics"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/persistence/database"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/security"
	"github.com/rafabene/pessoas-backend/internal/services"
)

const cookieName = "jwt_token"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type problem struct {
	Type   string                   `json:"type"`
	Title  string                   `json:"title"`
	Status int                      `json:"status"`
	Errors []dto.FieldErrorResponse `json:"errors"`
}

var _ = Describe("Router", func() {
	var (
		router    http.Handler
		staticDir string
	)

	BeforeEach(func() {
		log := logging.Discard()

		db, err := database.NewInMemory(log)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		})

		pessoasRepo := database.NewPessoaRepository(db)
		usuariosRepo := database.NewUsuarioRepository(db)
		seeder := database.NewSeeder(database.NewUnitOfWork(db), pessoasRepo, usuariosRepo, security.HashPassword, log)
		Expect(seeder.Seed(context.Background())).To(Succeed())

		i18nService, err := i18n.NewEmbeddedService("pt-BR")
		Expect(err).NotTo(HaveOccurred())

		registry := prometheus.NewRegistry()

		staticDir = GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>spa</html>"), 0o600)).To(Succeed())

		router = httphandlers.NewRouter(httphandlers.RouterConfig{
			Env:            "test",
			BaseURL:        "http://api.test",
			StaticDir:      staticDir,
			AllowedOrigins: []string{"https://localhost:53253"},
			Cookie:         httphandlers.CookieConfig{Name: cookieName},
		}, httphandlers.Dependencies{
			Pessoas:  services.NewPessoaService(pessoasRepo, nil, log),
			Auth:     services.NewAuthService(usuariosRepo, security.NewTokenManager("test-secret", time.Hour), log),
			I18n:     i18nService,
			Logger:   log,
			Metrics:  metrics.NewCollector(registry),
			Gatherer: registry,
		})
	})

	do := func(method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
		var reader *bytes.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(raw)
		} else {
			reader = bytes.NewReader(nil)
		}

		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		if cookie != nil {
			req.AddCookie(cookie)
		}

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	login := func(email, senha string) *http.Cookie {
		w := do(http.MethodPost, "/api/v1/auth", dto.LoginRequest{Email: email, Senha: senha}, nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		for _, c := range w.Result().Cookies() {
			if c.Name == cookieName {
				return c
			}
		}
		Fail("cookie de autenticação ausente")
		return nil
	}

	decodeEnvelope := func(w *httptest.ResponseRecorder) envelope {
		var env envelope
		Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
		return env
	}

	decodeProblem := func(w *httptest.ResponseRecorder) problem {
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/problem+json"))
		var p problem
		Expect(json.Unmarshal(w.Body.Bytes(), &p)).To(Succeed())
		return p
	}

	novaPessoa := func(cpf string) map[string]any {
		return map[string]any{
			"nome":           "Ana Souza",
			"email":          "ana@email.com",
			"dataNascimento": "20/09/1998",
			"cpf":            cpf,
			"sexo":           2,
			"nacionalidade":  1,
			"naturalidade":   "SP",
			"endereco":       "Rua A, 10",
		}
	}

	Describe("login", func() {
		It("grava o token num cookie HttpOnly sem devolvê-lo no corpo", func() {
			w := do(http.MethodPost, "/api/v1/auth", dto.LoginRequest{Email: "admin@pessoas.com", Senha: "admin123"}, nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			env := decodeEnvelope(w)
			Expect(env.Success).To(BeTrue())
			Expect(env.Message).To(Equal("Login realizado com sucesso."))
			Expect(string(env.Data)).To(Equal("null"))

			cookies := w.Result().Cookies()
			Expect(cookies).To(HaveLen(1))
			Expect(cookies[0].Name).To(Equal(cookieName))
			Expect(cookies[0].HttpOnly).To(BeTrue())
			Expect(cookies[0].SameSite).To(Equal(http.SameSiteNoneMode))
			Expect(cookies[0].Path).To(Equal("/"))
			Expect(w.Body.String()).NotTo(ContainSubstring(cookies[0].Value))
		})

		It("rejeita senha errada com envelope de falha", func() {
			w := do(http.MethodPost, "/api/v1/auth", dto.LoginRequest{Email: "admin@pessoas.com", Senha: "errada"}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			env := decodeEnvelope(w)
			Expect(env.Success).To(BeFalse())
			Expect(env.Message).To(Equal("Email ou senha inválidos."))
			Expect(w.Result().Cookies()).To(BeEmpty())
		})

		It("rejeita corpo sem senha com problema de validação", func() {
			w := do(http.MethodPost, "/api/v1/auth", map[string]string{"email": "admin@pessoas.com"}, nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			p := decodeProblem(w)
			Expect(p.Errors).To(ContainElement(HaveField("Field", "senha")))
		})
	})

	Describe("autorização", func() {
		It("exige autenticação", func() {
			w := do(http.MethodGet, "/api/v1/pessoa", nil, nil)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeProblem(w).Status).To(Equal(http.StatusUnauthorized))
		})

		It("aceita o token no header Authorization", func() {
			cookie := login("admin@pessoas.com", "admin123")

			req := httptest.NewRequest(http.MethodGet, "/api/v2/pessoa", nil)
			req.Header.Set("Authorization", "Bearer "+cookie.Value)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("proíbe o leitor de remover pessoas", func() {
			cookie := login("leitor@pessoas.com", "leitor123")

			w := do(http.MethodGet, "/api/v1/pessoa", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodDelete, "/api/v1/pessoa/00000000-0000-0000-0000-000000000001", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decodeProblem(w).Type).To(HavePrefix("http://api.test/"))

			w = do(http.MethodPost, "/api/v2/pessoa", novaPessoa("987.654.321-00"), cookie)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("pessoas", func() {
		var cookie *http.Cookie

		BeforeEach(func() {
			cookie = login("admin@pessoas.com", "admin123")
		})

		It("lista as 15 pessoas da carga inicial", func() {
			w := do(http.MethodGet, "/api/v1/pessoa", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			var pessoas []dto.PessoaResponse
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &pessoas)).To(Succeed())
			Expect(pessoas).To(HaveLen(15))
		})

		It("pagina com total e linhas", func() {
			w := do(http.MethodGet, "/api/v1/pessoa/paginado?pagina=1&linhasPorPagina=5", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			var page dto.PaginatedResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Total).To(Equal(15))
			Expect(page.Data).To(HaveLen(5))
		})

		It("cria, busca, remove e não encontra mais", func() {
			w := do(http.MethodPost, "/api/v1/pessoa", novaPessoa("987.654.321-00"), cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			env := decodeEnvelope(w)
			Expect(env.Message).To(Equal("Pessoa cadastrada com sucesso."))

			var created dto.PessoaResponse
			Expect(json.Unmarshal(env.Data, &created)).To(Succeed())
			Expect(created.ID).NotTo(BeEmpty())
			Expect(created.Cpf).To(Equal("98765432100"))
			Expect(created.DataNascimento).To(Equal("20/09/1998"))
			Expect(created.Sexo).To(Equal("Feminino"))

			w = do(http.MethodGet, "/api/v1/pessoa/"+created.ID, nil, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodDelete, "/api/v1/pessoa/"+created.ID, nil, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))
			env = decodeEnvelope(w)
			Expect(string(env.Data)).To(Equal(`"` + created.ID + `"`))

			w = do(http.MethodGet, "/api/v1/pessoa/"+created.ID, nil, cookie)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeEnvelope(w).Message).To(Equal("Pessoa não encontrada."))
		})

		It("altera uma pessoa pela v2", func() {
			w := do(http.MethodPost, "/api/v2/pessoa", novaPessoa("987.654.321-00"), cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			var created dto.PessoaResponse
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &created)).To(Succeed())

			edit := novaPessoa("987.654.321-00")
			edit["id"] = created.ID
			edit["nome"] = "Ana Atualizada"

			w = do(http.MethodPut, "/api/v2/pessoa", edit, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))

			var updated dto.PessoaResponse
			Expect(json.Unmarshal(decodeEnvelope(w).Data, &updated)).To(Succeed())
			Expect(updated.ID).To(Equal(created.ID))
			Expect(updated.Nome).To(Equal("Ana Atualizada"))
		})

		It("exige endereço na v2 mas não na v1", func() {
			body := novaPessoa("987.654.321-00")
			delete(body, "endereco")

			w := do(http.MethodPost, "/api/v2/pessoa", body, cookie)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(w).Errors).To(ContainElement(HaveField("Field", "endereco")))

			w = do(http.MethodPost, "/api/v1/pessoa", body, cookie)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("devolve os campos inválidos no envelope", func() {
			body := novaPessoa("123")
			body["nome"] = ""
			body["email"] = "sem-arroba"

			w := do(http.MethodPost, "/api/v1/pessoa", body, cookie)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			env := decodeEnvelope(w)
			Expect(env.Success).To(BeFalse())
			Expect(env.Message).To(HavePrefix("Falha na validação de domínio:"))
			Expect(env.Message).To(ContainSubstring("nome"))
			Expect(env.Message).To(ContainSubstring("cpf"))
		})

		It("recusa CPF já cadastrado", func() {
			w := do(http.MethodPost, "/api/v1/pessoa", novaPessoa("123.456.789-01"), cookie)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeEnvelope(w).Message).To(Equal("Este CPF já está cadastrado para outra pessoa."))
		})

		It("responde 404 para id inexistente ou inválido", func() {
			w := do(http.MethodGet, "/api/v1/pessoa/nao-e-uuid", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusNotFound))

			w = do(http.MethodDelete, "/api/v2/pessoa/00000000-0000-0000-0000-000000000001", nil, cookie)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("traduz mensagens conforme Accept-Language", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/pessoa/00000000-0000-0000-0000-000000000001", nil)
			req.Header.Set("Accept-Language", "en-US,en;q=0.9")
			req.AddCookie(cookie)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeEnvelope(w).Message).To(Equal("Person not found."))
		})
	})

	Describe("rotas auxiliares", func() {
		It("responde ao health check", func() {
			w := do(http.MethodGet, "/health", nil, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
		})

		It("expõe as métricas das requisições", func() {
			do(http.MethodGet, "/health", nil, nil)

			w := do(http.MethodGet, "/metrics", nil, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("pessoas_http_requests_total"))
		})

		It("serve o index.html do SPA para rotas do cliente", func() {
			w := do(http.MethodGet, "/pessoas/editar", nil, nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("spa"))
		})

		It("responde 404 em rotas desconhecidas da API", func() {
			w := do(http.MethodGet, "/api/v1/desconhecida", nil, nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeProblem(w).Status).To(Equal(http.StatusNotFound))
		})
	})
})
