package controllers

import (
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/app/middleware"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController expõe as verificações de saúde do serviço
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController cria um novo controlador de saúde
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc devolve um handler Gin para as rotas de saúde
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// Ping responde pong para verificação de vida
// @Summary      Ping
// @Tags         Público
// @Produce      json
// @Success      200  {object}  response.Response  "pong"
// @Router       /api/ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{"message": "pong"})
}

// Status reporta o estado do banco, do Redis e do cache em memória
// @Summary      Estado do serviço
// @Tags         Público
// @Produce      json
// @Success      200  {object}  response.Response  "Estado das dependências"
// @Router       /api/health/status [get]
func (c *HealthController) Status() {
	dbStatus := "ok"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil {
		dbStatus = "erro: " + err.Error()
	} else if err := sqlDB.Ping(); err != nil {
		dbStatus = "erro: " + err.Error()
	}

	redisStatus := "desativado"
	if redisService, ok := c.Container.GetService("redis").(services.InterfaceRedisService); ok && redisService != nil {
		if err := redisService.Ping(); err != nil {
			redisStatus = "erro: " + err.Error()
		} else {
			redisStatus = "ok"
		}
	}

	cacheTotal, cacheExpired := middleware.CacheStats()

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
		"cache": gin.H{
			"entradas":  cacheTotal,
			"expiradas": cacheExpired,
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
