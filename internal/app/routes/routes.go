package routes

import (
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/app/controllers"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/app/middleware"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter monta o roteador com middlewares, contêiner e rotas
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	// CORS para o front-end
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg)
	middleware.InitAuthMiddleware(cfg)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registerPublicRoutes(r, serviceContainer)
	registerAssociadoRoutes(r, serviceContainer)
	registerComercianteRoutes(r, serviceContainer)

	return r
}

// registerPublicRoutes registra as rotas sem autenticação
func registerPublicRoutes(r *gin.Engine, c *container.ServiceContainer) {
	public := r.Group("/api")
	public.Use(middleware.IPRateLimiter(5, 10))
	{
		public.GET("/ping", controllers.HandleHealthFunc(c, "ping"))
		public.GET("/health/status", controllers.HandleHealthFunc(c, "status"))

		public.GET("/categorias",
			middleware.Cache(middleware.CacheConfig{TTL: 10 * time.Minute}),
			controllers.HandleCategoriaFunc(c, "getCategorias"))

		auth := public.Group("/auth")
		{
			auth.POST("/login", controllers.HandleJWTFunc(c, "login"))
			auth.POST("/cadastro/associado", controllers.HandleCadastroFunc(c, "registerAssociado"))
			auth.POST("/cadastro/comerciante", controllers.HandleCadastroFunc(c, "registerComerciante"))
		}
	}
}

// registerAssociadoRoutes registra as rotas do associado autenticado
func registerAssociadoRoutes(r *gin.Engine, c *container.ServiceContainer) {
	associado := r.Group("/api/associado")
	associado.Use(middleware.AuthenticateAssociado())
	{
		associado.GET("/cupons/disponiveis", controllers.HandleAssociadoFunc(c, "getCuponsDisponiveis"))
		associado.GET("/reservas", controllers.HandleAssociadoFunc(c, "getMinhasReservas"))

		// Limitador combinado segura cliques duplicados nas mutações
		associado.POST("/cupons/:num_cupom/reservar",
			middleware.CombinedRateLimiter(1, 3),
			controllers.HandleAssociadoFunc(c, "reservarCupom"))
		associado.DELETE("/reservas/:id",
			middleware.CombinedRateLimiter(1, 3),
			controllers.HandleAssociadoFunc(c, "removerReserva"))
	}
}

// registerComercianteRoutes registra as rotas do comerciante autenticado
func registerComercianteRoutes(r *gin.Engine, c *container.ServiceContainer) {
	comerciante := r.Group("/api/comerciante")
	comerciante.Use(middleware.AuthenticateComerciante())
	{
		comerciante.GET("/cupons", controllers.HandleCupomFunc(c, "getMeusCupons"))
		comerciante.GET("/reservas", controllers.HandleCupomFunc(c, "getReservasDoComercio"))

		comerciante.POST("/cupons",
			middleware.CombinedRateLimiter(1, 3),
			controllers.HandleCupomFunc(c, "createCupom"))
		comerciante.POST("/reservas/:id/utilizar",
			middleware.CombinedRateLimiter(1, 3),
			controllers.HandleCupomFunc(c, "utilizarReserva"))
	}
}
