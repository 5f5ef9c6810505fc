package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS libera as origens configuradas com credenciais (cookie jwt_token).
// "*" reflete qualquer origem.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if slices.Contains(allowedOrigins, "*") {
		config.AllowOriginFunc = func(string) bool { return true }
	} else {
		origins := slices.Clone(allowedOrigins)
		config.AllowOriginFunc = func(origin string) bool {
			return slices.Contains(origins, origin)
		}
	}

	return cors.New(config)
}
