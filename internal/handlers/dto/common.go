package dto

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
)

const defaultBaseURL = "http://localhost:8080"

// Envelope é a resposta padrão {success, data, message}
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Ok cria um envelope de sucesso
func Ok(data any, message string) Envelope {
	return Envelope{Success: true, Data: data, Message: message}
}

// Fail cria um envelope de falha sem dados
func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}

// ProblemResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ProblemResponse struct {
	*problems.DefaultProblem
	Errors []FieldErrorResponse `json:"errors,omitempty"`
}

// FieldErrorResponse representa um erro de validação de campo
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewProblemI18n cria um problema RFC 7807 com título e detalhe traduzidos
func NewProblemI18n(c *gin.Context, status int, problemType, titleKey, detailKey string, params ...map[string]interface{}) *ProblemResponse {
	baseURL := c.GetString(BaseURLContextKey)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = strings.TrimSuffix(baseURL, "/") + problemType
	problem.Title = T(c, titleKey, params...)
	problem.Instance = c.Request.URL.Path

	return &ProblemResponse{DefaultProblem: problem}
}

// AbortWithProblem escreve o problema com o media type application/problem+json
func AbortWithProblem(c *gin.Context, problem *ProblemResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// BindingProblem converte erros de binding/validação do gin num problema 400
func BindingProblem(c *gin.Context, err error) *ProblemResponse {
	problem := NewProblemI18n(c, http.StatusBadRequest,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
	)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			problem.Errors = append(problem.Errors, FieldErrorResponse{
				Field:   fe.Field(),
				Message: fe.Error(),
				Tag:     fe.Tag(),
			})
		}
		return problem
	}

	// JSON malformado ou tipo incompatível
	problem.Detail = err.Error()
	return problem
}

// UnauthorizedProblem cria um problema 401
func UnauthorizedProblem(c *gin.Context) *ProblemResponse {
	return NewProblemI18n(c, http.StatusUnauthorized,
		domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title",
		"error.unauthorized.detail",
	)
}

// ForbiddenProblem cria um problema 403
func ForbiddenProblem(c *gin.Context) *ProblemResponse {
	return NewProblemI18n(c, http.StatusForbidden,
		domainerrors.ProblemTypeForbidden,
		"error.forbidden.title",
		"error.forbidden.detail",
	)
}

// TooManyRequestsProblem cria um problema 429
func TooManyRequestsProblem(c *gin.Context) *ProblemResponse {
	return NewProblemI18n(c, http.StatusTooManyRequests,
		domainerrors.ProblemTypeTooMany,
		"error.too_many.title",
		"error.too_many.detail",
	)
}

// InternalProblem cria um problema 500
func InternalProblem(c *gin.Context) *ProblemResponse {
	return NewProblemI18n(c, http.StatusInternalServerError,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
	)
}

// NotFoundProblem cria um problema 404 para o recurso informado
func NotFoundProblem(c *gin.Context, resource string) *ProblemResponse {
	return NewProblemI18n(c, http.StatusNotFound,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		map[string]interface{}{"Resource": resource},
	)
}
