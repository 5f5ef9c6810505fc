// Package client é o cliente HTTP tipado da API de pessoas.
//
// Respostas 401, 403 e demais falhas são repassadas aos Hooks configurados,
// com a mensagem devolvida pelo servidor, além de retornarem um *APIError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

const defaultTimeout = 10 * time.Second

// Hooks são chamados quando uma requisição falha. Campos nil são ignorados.
type Hooks struct {
	OnUnauthorized func()
	OnForbidden    func()
	OnError        func(message string)
}

// APIError é uma resposta de erro da API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsStatus indica se err é um *APIError com o status informado
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client fala com a API v1 ou v2 e guarda o cookie de sessão entre chamadas
type Client struct {
	baseURL  *url.URL
	version  string
	language string
	http     *http.Client
	hooks    Hooks
}

// Option configura o Client
type Option func(*Client)

// WithHTTPClient substitui o http.Client padrão; o cookie jar é mantido se já houver um.
// Sem jar, o cliente usa uma cópia de hc com um jar novo e hc não é alterado.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithHooks define os callbacks de erro
func WithHooks(h Hooks) Option {
	return func(c *Client) { c.hooks = h }
}

// WithVersion escolhe a versão da API de pessoas ("v1" ou "v2")
func WithVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// WithLanguage envia Accept-Language em todas as requisições
func WithLanguage(lang string) Option {
	return func(c *Client) { c.language = lang }
}

// New cria um Client para baseURL (ex.: http://localhost:8080)
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	c := &Client{baseURL: u, version: "v1"}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		c.http = &http.Client{Timeout: defaultTimeout}
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("cookie jar: %w", err)
		}
		// cópia rasa: o *http.Client do chamador não ganha o jar desta sessão
		copied := *c.http
		copied.Jar = jar
		c.http = &copied
	}

	return c, nil
}

// Login autentica; o token fica no cookie jar do cliente
func (c *Client) Login(ctx context.Context, email, senha string) error {
	body := map[string]string{"email": email, "senha": senha}
	_, err := call[json.RawMessage](ctx, c, http.MethodPost, "/api/v1/auth", body)
	return err
}

// List retorna todas as pessoas
func (c *Client) List(ctx context.Context) ([]Pessoa, error) {
	return call[[]Pessoa](ctx, c, http.MethodGet, c.pessoaPath(""), nil)
}

// ListPaginated retorna uma página; pagina é repassada ao servidor sem ajuste
func (c *Client) ListPaginated(ctx context.Context, pagina, linhasPorPagina int) (Page, error) {
	query := url.Values{}
	query.Set("pagina", strconv.Itoa(pagina))
	query.Set("linhasPorPagina", strconv.Itoa(linhasPorPagina))

	var page Page
	err := c.do(ctx, http.MethodGet, c.pessoaPath("/paginado")+"?"+query.Encode(), nil, &page)
	return page, err
}

// Get busca uma pessoa por id
func (c *Client) Get(ctx context.Context, id string) (Pessoa, error) {
	return call[Pessoa](ctx, c, http.MethodGet, c.pessoaPath("/"+url.PathEscape(id)), nil)
}

// Create cadastra uma pessoa
func (c *Client) Create(ctx context.Context, p PessoaRequest) (Pessoa, error) {
	p.ID = ""
	return call[Pessoa](ctx, c, http.MethodPost, c.pessoaPath(""), p)
}

// Update altera a pessoa identificada por p.ID
func (c *Client) Update(ctx context.Context, p PessoaRequest) (Pessoa, error) {
	return call[Pessoa](ctx, c, http.MethodPut, c.pessoaPath(""), p)
}

// Delete remove uma pessoa e retorna o id removido
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	return call[string](ctx, c, http.MethodDelete, c.pessoaPath("/"+url.PathEscape(id)), nil)
}

func (c *Client) pessoaPath(suffix string) string {
	return "/api/" + c.version + "/pessoa" + suffix
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var env envelope[T]
	if err := c.do(ctx, method, path, body, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.language != "" {
		req.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.intercept(0, err.Error())
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(raw, resp.Status)}
		c.intercept(apiErr.Status, apiErr.Message)
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// intercept dispara o hook correspondente ao status
func (c *Client) intercept(status int, message string) {
	switch status {
	case http.StatusUnauthorized:
		if c.hooks.OnUnauthorized != nil {
			c.hooks.OnUnauthorized()
		}
	case http.StatusForbidden:
		if c.hooks.OnForbidden != nil {
			c.hooks.OnForbidden()
		}
	default:
		if c.hooks.OnError != nil {
			c.hooks.OnError(message)
		}
	}
}

// errorMessage extrai a mensagem de um envelope ou de um problem+json
func errorMessage(raw []byte, fallback string) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, msg := range []string{body.Message, body.Detail, body.Title} {
			if msg != "" {
				return msg
			}
		}
	}
	return fallback
}
