package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
)

var apiPrefixes = []string{"/api/", "/swagger/", "/metrics", "/health"}

// spaFallback serve os arquivos do build do SPA e devolve index.html
// para as rotas do cliente. Rotas da API continuam respondendo 404.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if staticDir == "" || c.Request.Method != http.MethodGet || isAPIPath(path) {
			dto.AbortWithProblem(c, dto.NotFoundProblem(c, path))
			return
		}

		file := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}

		c.File(filepath.Join(staticDir, "index.html"))
	}
}

func isAPIPath(path string) bool {
	for _, prefix := range apiPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
