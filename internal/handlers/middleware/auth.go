package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/security"
)

// ClaimsContextKey guarda as claims do token autenticado
const ClaimsContextKey = "claims"

// TokenParser valida o token de acesso
type TokenParser interface {
	ParseToken(value string) (*security.Claims, error)
}

// Authenticate exige um token válido no cookie ou no header Authorization: Bearer
func Authenticate(parser TokenParser, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parser.ParseToken(tokenFromRequest(c, cookieName))
		if err != nil {
			dto.AbortWithProblem(c, dto.UnauthorizedProblem(c))
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequirePermission exige que o token conceda a permissão (use após Authenticate)
func RequirePermission(p entities.Permissao) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			dto.AbortWithProblem(c, dto.UnauthorizedProblem(c))
			return
		}

		if !claims.HasPermission(p) {
			dto.AbortWithProblem(c, dto.ForbiddenProblem(c))
			return
		}

		c.Next()
	}
}

// ClaimsFrom retorna as claims gravadas por Authenticate
func ClaimsFrom(c *gin.Context) (*security.Claims, bool) {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*security.Claims)
	return claims, ok
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
	if found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return ""
}
