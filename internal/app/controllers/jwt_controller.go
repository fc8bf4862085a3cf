package controllers

import (
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController define o controlador de autenticação
type InterfaceJWTController interface {
	Login()
}

// JWTController trata as requisições de autenticação
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController cria um novo controlador de autenticação
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"maria@exemplo.com.br"`
	Senha string `json:"senha" binding:"required" example:"segredo123"`
}

// LoginResponse representa a resposta de login
type LoginResponse struct {
	Code    int                   `json:"code" example:"0"`
	Message string                `json:"message" example:"sucesso"`
	Data    *services.LoginResult `json:"data"`
}

// ErrorResponse representa uma resposta de erro
type ErrorResponse struct {
	Code    int         `json:"code" example:"100007"`
	Message string      `json:"message" example:"erro interno do servidor"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc devolve um handler Gin para as rotas de autenticação
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// Login autentica associado ou comerciante pelo email
// @Summary      Login
// @Description  Autentica por email e senha e devolve o token JWT com o papel da conta
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais de acesso"
// @Success      200  {object}  LoginResponse  "Token emitido"
// @Failure      400  {object}  ErrorResponse  "Requisição inválida"
// @Failure      401  {object}  ErrorResponse  "Credenciais incorretas"
// @Router       /api/auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parâmetros de login inválidos", nil)
		return
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)

	result, err := authService.Login(req.Email, req.Senha)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, result)
}
