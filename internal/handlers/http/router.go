package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/pessoas-backend/internal/domain/entities"
	"github.com/rafabene/pessoas-backend/internal/domain/ports"
	"github.com/rafabene/pessoas-backend/internal/handlers/dto"
	"github.com/rafabene/pessoas-backend/internal/handlers/middleware"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/i18n"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/metrics"
	"github.com/rafabene/pessoas-backend/internal/infrastructure/realtime"
	"github.com/rafabene/pessoas-backend/internal/services"

	// Documentação OpenAPI das duas versões
	_ "github.com/rafabene/pessoas-backend/docs/v1"
	_ "github.com/rafabene/pessoas-backend/docs/v2"
)

// RouterConfig são as configurações HTTP do roteador
type RouterConfig struct {
	Env            string
	BaseURL        string
	StaticDir      string
	AllowedOrigins []string
	Cookie         CookieConfig
}

// Dependencies são os serviços usados pelas rotas.
// Metrics, Gatherer, Hub e LoginLimiter são opcionais.
type Dependencies struct {
	Pessoas      *services.PessoaService
	Auth         *services.AuthService
	I18n         *i18n.Service
	Logger       ports.Logger
	Metrics      *metrics.Collector
	Gatherer     prometheus.Gatherer
	Hub          *realtime.Hub
	LoginLimiter *middleware.RateLimiter
}

// NewRouter monta o gin.Engine com middlewares globais e as rotas v1 e v2
func NewRouter(cfg RouterConfig, deps Dependencies) *gin.Engine {
	dto.RegisterValidators()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	router.GET("/swagger/v1/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("v1")))
	router.GET("/swagger/v2/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName("v2")))

	pessoas := NewPessoaHandler(deps.Pessoas)
	authenticate := middleware.Authenticate(deps.Auth, cfg.Cookie.Name)

	v1 := router.Group("/api/v1")
	{
		login := []gin.HandlerFunc{NewAuthHandler(deps.Auth, cfg.Cookie, loginRecorder(deps.Metrics)).Login}
		if deps.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{deps.LoginLimiter.Middleware()}, login...)
		}
		v1.POST("/auth", login...)

		group := registerPessoaRoutes(v1, pessoas, authenticate,
			Create[dto.AdicionarPessoaV1Request](pessoas),
			Update[dto.EditarPessoaV1Request](pessoas),
		)

		if deps.Hub != nil {
			group.GET("/eventos",
				middleware.RequirePermission(entities.PermissaoVisualizarPessoa),
				NewEventsHandler(deps.Hub).Stream,
			)
		}
	}

	v2 := router.Group("/api/v2")
	{
		registerPessoaRoutes(v2, pessoas, authenticate,
			Create[dto.AdicionarPessoaV2Request](pessoas),
			Update[dto.EditarPessoaV2Request](pessoas),
		)
	}

	router.NoRoute(spaFallback(cfg.StaticDir))

	return router
}

// registerPessoaRoutes registra o CRUD de pessoas; só create e update variam por versão
func registerPessoaRoutes(
	api *gin.RouterGroup,
	h *PessoaHandler,
	authenticate gin.HandlerFunc,
	create, update gin.HandlerFunc,
) *gin.RouterGroup {
	group := api.Group("/pessoa", authenticate)

	visualizar := middleware.RequirePermission(entities.PermissaoVisualizarPessoa)
	group.GET("", visualizar, h.List)
	group.GET("/paginado", visualizar, h.ListPaginated)
	group.GET("/:id", visualizar, h.Get)
	group.POST("", middleware.RequirePermission(entities.PermissaoAdicionarPessoa), create)
	group.PUT("", middleware.RequirePermission(entities.PermissaoEditarPessoa), update)
	group.DELETE("/:id", middleware.RequirePermission(entities.PermissaoRemoverPessoa), h.Delete)

	return group
}

func loginRecorder(collector *metrics.Collector) LoginRecorder {
	if collector == nil {
		return nil
	}
	return collector
}
