package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
	"github.com/rafabene/pessoas-backend/internal/services"
)

// LoginRecorder recebe o resultado de cada tentativa de login
type LoginRecorder interface {
	RecordLogin(success bool)
}

// CookieConfig define o cookie que carrega o token
type CookieConfig struct {
	Name   string
	Secure bool
}

// AuthHandler lida com o login
type AuthHandler struct {
	service  *services.AuthService
	cookie   CookieConfig
	recorder LoginRecorder
}

// NewAuthHandler cria um novo AuthHandler; recorder pode ser nil
func NewAuthHandler(service *services.AuthService, cookie CookieConfig, recorder LoginRecorder) *AuthHandler {
	return &AuthHandler{service: service, cookie: cookie, recorder: recorder}
}

// Login autentica e grava o token num cookie HttpOnly; o token não volta no corpo
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.AbortWithProblem(c, dto.BindingProblem(c, err))
		return
	}

	token, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Senha)
	h.record(err == nil)
	if err != nil {
		respondError(c, err)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookie.Name,
		Value:    token.Value,
		Path:     "/",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteNoneMode,
	})

	c.JSON(http.StatusOK, dto.Ok(nil, dto.T(c, "auth.success")))
}

func (h *AuthHandler) record(success bool) {
	if h.recorder != nil {
		h.recorder.RecordLogin(success)
	}
}
