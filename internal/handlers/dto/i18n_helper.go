package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/pessoas-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// BaseURLContextKey guarda a URL base usada nos tipos de problema RFC 7807
	BaseURLContextKey = "base_url"

	fallbackLanguage = "pt-BR"
)

// T é um helper para traduzir mensagens no contexto do Gin
// Uso: dto.T(c, "error.delete_failed", map[string]interface{}{"Detail": "..."})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma configurado no contexto da requisição
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(LanguageContextKey); lang != "" {
		return lang
	}
	return fallbackLanguage
}
