package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CORS([]string{"https://localhost:53253"}))
	router.GET("/api/v1/pessoa", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("origem permitida recebe headers com credenciais", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoa", nil)
		req.Header.Set("Origin", "https://localhost:53253")
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://localhost:53253" {
			t.Errorf("esperava origem refletida, obteve '%s'", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("esperava credentials 'true', obteve '%s'", got)
		}
	})

	t.Run("origem desconhecida é bloqueada", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/v1/pessoa", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperava 403, obteve %d", w.Code)
		}
	})

	t.Run("preflight responde 204", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/api/v1/pessoa", nil)
		req.Header.Set("Origin", "https://localhost:53253")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("esperava 204, obteve %d", w.Code)
		}
	})
}
