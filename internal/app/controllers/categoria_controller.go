package controllers

import (
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// CategoriaController trata a listagem pública de categorias
type CategoriaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoriaController cria um novo controlador de categorias
func NewCategoriaController(ctx *gin.Context, container *container.ServiceContainer) *CategoriaController {
	return &CategoriaController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleCategoriaFunc devolve um handler Gin para as rotas de categoria
func HandleCategoriaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoriaController(ctx, container)

		switch method {
		case "getCategorias":
			controller.GetCategorias()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetCategorias lista as categorias de comércio disponíveis
// @Summary      Categorias
// @Description  Lista as categorias usadas no cadastro de comerciantes
// @Tags         Público
// @Produce      json
// @Success      200  {object}  response.Response  "Lista de categorias"
// @Router       /api/categorias [get]
func (c *CategoriaController) GetCategorias() {
	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	categorias, err := authService.GetCategorias()
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, categorias)
}
