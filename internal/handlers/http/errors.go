package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/pessoas-backend/internal/domain/errors"
	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
)

// respondError converte erros do serviço em envelopes de falha.
// Erros desconhecidos viram um problema 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerrors.ErrPessoaNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(dto.T(c, domainerrors.ErrPessoaNotFound.Error())))
	case errors.Is(err, domainerrors.ErrDeleteFailed):
		c.JSON(http.StatusBadRequest, dto.Fail(dto.T(c, domainerrors.ErrDeleteFailed.Error(),
			map[string]interface{}{"Detail": causeOf(err, domainerrors.ErrDeleteFailed)})))
	case errors.Is(err, domainerrors.ErrCpfAlreadyExists),
		errors.Is(err, domainerrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.Fail(dto.T(c, unwrapSentinel(err))))
	case domainerrors.IsValidation(err):
		var verr *domainerrors.ValidationError
		errors.As(err, &verr)
		c.JSON(http.StatusBadRequest, dto.Fail(dto.T(c, domainerrors.MessageValidationFields,
			map[string]interface{}{"Fields": strings.Join(verr.FieldNames(), ", ")})))
	default:
		_ = c.Error(err)
		dto.AbortWithProblem(c, dto.InternalProblem(c))
	}
}

// causeOf devolve a mensagem do erro embrulhado junto com sentinel
func causeOf(err, sentinel error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			if !errors.Is(e, sentinel) {
				return e.Error()
			}
		}
	}
	return strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
}

// unwrapSentinel encontra o message ID mais interno da cadeia
func unwrapSentinel(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
