package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "jwt_token"

// fakeAPI imita as respostas da API de pessoas
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if c, err := r.Cookie(sessionCookie); err != nil || c.Value != "token-admin" {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"title":"Não autorizado","status":401,"detail":"Faça login para continuar."}`))
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["senha"] != "admin123" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Email ou senha inválidos."}`))
			return
		}
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "token-admin", Path: "/", HttpOnly: true})
		_, _ = w.Write([]byte(`{"success":true,"data":null,"message":"Login realizado com sucesso."}`))
	})
	mux.HandleFunc("GET /api/v2/pessoa/paginado", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		assert.Equal(t, "2", r.URL.Query().Get("pagina"))
		assert.Equal(t, "5", r.URL.Query().Get("linhasPorPagina"))
		_, _ = w.Write([]byte(`{"total":15,"data":[{"id":"a","nome":"Ana"}]}`))
	})
	mux.HandleFunc("POST /api/v2/pessoa", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var body PessoaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Cpf == "123.456.789-01" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"success":false,"message":"Este CPF já está cadastrado para outra pessoa."}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"nova","nome":"` + body.Nome + `","sexo":"Feminino"}}`))
	})
	mux.HandleFunc("PUT /api/v2/pessoa", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		var body PessoaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"` + body.ID + `","nome":"` + body.Nome + `"}}`))
	})
	mux.HandleFunc("GET /api/v2/pessoa/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"message":"Pessoa não encontrada."}`))
	})
	mux.HandleFunc("DELETE /api/v2/pessoa/{id}", func(w http.ResponseWriter, r *http.Request) {
		if !authorized(w, r) {
			return
		}
		if r.PathValue("id") == "protegida" {
			w.Header().Set("Content-Type", "application/problem+json")
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"title":"Acesso negado","status":403}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"data":"` + r.PathValue("id") + `"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type hookCalls struct {
	unauthorized int
	forbidden    int
	messages     []string
}

func (h *hookCalls) hooks() Hooks {
	return Hooks{
		OnUnauthorized: func() { h.unauthorized++ },
		OnForbidden:    func() { h.forbidden++ },
		OnError:        func(msg string) { h.messages = append(h.messages, msg) },
	}
}

func TestClient(t *testing.T) {
	srv := fakeAPI(t)
	ctx := context.Background()

	calls := &hookCalls{}
	c, err := New(srv.URL, WithVersion("v2"), WithHooks(calls.hooks()))
	require.NoError(t, err)

	t.Run("sem login dispara OnUnauthorized", func(t *testing.T) {
		_, err := c.ListPaginated(ctx, 2, 5)
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
		assert.Equal(t, 1, calls.unauthorized)
	})

	t.Run("login inválido repassa a mensagem do servidor", func(t *testing.T) {
		err := c.Login(ctx, "admin@pessoas.com", "errada")
		require.Error(t, err)
		assert.Equal(t, []string{"Email ou senha inválidos."}, calls.messages)
	})

	t.Run("login guarda o cookie para as próximas chamadas", func(t *testing.T) {
		require.NoError(t, c.Login(ctx, "admin@pessoas.com", "admin123"))

		page, err := c.ListPaginated(ctx, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, 15, page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Ana", page.Data[0].Nome)
	})

	t.Run("create decodifica o envelope", func(t *testing.T) {
		sexo := 2
		p, err := c.Create(ctx, PessoaRequest{ID: "ignorado", Nome: "Bia", Cpf: "987.654.321-00", Sexo: &sexo})
		require.NoError(t, err)
		assert.Equal(t, "nova", p.ID)
		assert.Equal(t, "Bia", p.Nome)
		assert.Equal(t, "Feminino", p.Sexo)
	})

	t.Run("CPF duplicado vira APIError com a mensagem", func(t *testing.T) {
		_, err := c.Create(ctx, PessoaRequest{Nome: "Bia", Cpf: "123.456.789-01"})

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, "Este CPF já está cadastrado para outra pessoa.", apiErr.Message)
		assert.Contains(t, calls.messages, apiErr.Message)
	})

	t.Run("update envia o id no corpo", func(t *testing.T) {
		p, err := c.Update(ctx, PessoaRequest{ID: "abc", Nome: "Bia Atualizada", Cpf: "987.654.321-00"})
		require.NoError(t, err)
		assert.Equal(t, "abc", p.ID)
		assert.Equal(t, "Bia Atualizada", p.Nome)
	})

	t.Run("get inexistente vira 404 com a mensagem", func(t *testing.T) {
		_, err := c.Get(ctx, "inexistente")
		assert.True(t, IsStatus(err, http.StatusNotFound))
		assert.Equal(t, "Pessoa não encontrada.", calls.messages[len(calls.messages)-1])
	})

	t.Run("delete retorna o id removido", func(t *testing.T) {
		id, err := c.Delete(ctx, "abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", id)
	})

	t.Run("403 dispara OnForbidden", func(t *testing.T) {
		_, err := c.Delete(ctx, "protegida")
		assert.True(t, IsStatus(err, http.StatusForbidden))
		assert.Equal(t, 1, calls.forbidden)
	})
}

func TestClient_WithoutHooks(t *testing.T) {
	srv := fakeAPI(t)

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	_, err = c.List(context.Background())
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_WithHTTPClient(t *testing.T) {
	srv := fakeAPI(t)
	ctx := context.Background()
	hc := &http.Client{}

	first, err := New(srv.URL, WithVersion("v2"), WithHTTPClient(hc))
	require.NoError(t, err)
	second, err := New(srv.URL, WithVersion("v2"), WithHTTPClient(hc))
	require.NoError(t, err)

	assert.Nil(t, hc.Jar, "o http.Client do chamador não deve ser alterado")

	require.NoError(t, first.Login(ctx, "admin@pessoas.com", "admin123"))

	page, err := first.ListPaginated(ctx, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, page.Total)

	t.Run("sessões não vazam entre clientes que compartilham o http.Client", func(t *testing.T) {
		_, err := second.ListPaginated(ctx, 2, 5)
		assert.True(t, IsStatus(err, http.StatusUnauthorized))
	})
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "msg", errorMessage([]byte(`{"message":"msg"}`), "x"))
	assert.Equal(t, "detalhe", errorMessage([]byte(`{"title":"t","detail":"detalhe"}`), "x"))
	assert.Equal(t, "500 Internal Server Error", errorMessage([]byte(`oops`), "500 Internal Server Error"))
}
