package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
	"github.com/rafabene/pessoas-backend/internal/services"
)

// PessoaHandler lida com requisições HTTP de pessoas, comum às duas versões da API
type PessoaHandler struct {
	service *services.PessoaService
}

// NewPessoaHandler cria um novo PessoaHandler
func NewPessoaHandler(service *services.PessoaService) *PessoaHandler {
	return &PessoaHandler{service: service}
}

// List retorna todas as pessoas
func (h *PessoaHandler) List(c *gin.Context) {
	pessoas, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Ok(dto.ToPessoaResponses(pessoas), dto.T(c, "pessoa.listed")))
}

// ListPaginated retorna {total, data}; pagina é repassada sem ajuste
func (h *PessoaHandler) ListPaginated(c *gin.Context) {
	var query dto.PaginacaoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.AbortWithProblem(c, dto.BindingProblem(c, err))
		return
	}

	page, err := h.service.ListPaginated(c.Request.Context(), query.Pagina, query.LinhasPorPagina)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaginatedResponse(page))
}

// Get busca uma pessoa por ID; ids que não são uuid também resultam em 404
func (h *PessoaHandler) Get(c *gin.Context) {
	id, ok := pessoaID(c)
	if !ok {
		respondError(c, domainerrors.ErrPessoaNotFound)
		return
	}

	pessoa, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Ok(dto.ToPessoaResponse(pessoa), dto.T(c, "pessoa.found")))
}

// Delete remove uma pessoa e devolve o id removido
func (h *PessoaHandler) Delete(c *gin.Context) {
	id, ok := pessoaID(c)
	if !ok {
		respondError(c, domainerrors.ErrPessoaNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Ok(id, dto.T(c, "pessoa.deleted")))
}

// Create retorna o handler de criação para o formato de requisição R
func Create[R dto.PessoaRequest](h *PessoaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.AbortWithProblem(c, dto.BindingProblem(c, err))
			return
		}

		pessoa, err := h.service.Create(c.Request.Context(), req.ToInput())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.Ok(dto.ToPessoaResponse(pessoa), dto.T(c, "pessoa.created")))
	}
}

// Update retorna o handler de edição para o formato de requisição R
func Update[R dto.EditarPessoaRequest](h *PessoaHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBindJSON(&req); err != nil {
			dto.AbortWithProblem(c, dto.BindingProblem(c, err))
			return
		}

		pessoa, err := h.service.Update(c.Request.Context(), req.PessoaID(), req.ToInput())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.Ok(dto.ToPessoaResponse(pessoa), dto.T(c, "pessoa.updated")))
	}
}

func pessoaID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
