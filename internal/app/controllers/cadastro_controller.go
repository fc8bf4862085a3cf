package controllers

import (
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceCadastroController define o controlador de cadastros
type InterfaceCadastroController interface {
	RegisterAssociado()
	RegisterComerciante()
}

// CadastroController trata o cadastro de associados e comerciantes
type CadastroController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCadastroController cria um novo controlador de cadastros
func NewCadastroController(ctx *gin.Context, container *container.ServiceContainer) *CadastroController {
	return &CadastroController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterAssociadoRequest representa o cadastro de um associado
type RegisterAssociadoRequest struct {
	Cpf            string `json:"cpf" binding:"required" example:"123.456.789-09"`
	Nome           string `json:"nome" binding:"required" example:"Maria da Silva"`
	DataNascimento string `json:"data_nascimento" binding:"required" example:"1990-05-20"`
	Celular        string `json:"celular" binding:"required" example:"(45) 99876-5432"`
	Email          string `json:"email" binding:"required,email" example:"maria@exemplo.com.br"`
	Endereco       string `json:"endereco" binding:"required" example:"Rua das Flores, 123"`
	Bairro         string `json:"bairro" binding:"required" example:"Centro"`
	Cep            string `json:"cep" binding:"required" example:"85900-000"`
	Uf             string `json:"uf" binding:"required,len=2" example:"PR"`
	Cidade         string `json:"cidade" binding:"required" example:"Toledo"`
	Senha          string `json:"senha" binding:"required,min=6" example:"segredo123"`
	ConfirmaSenha  string `json:"confirma_senha" binding:"required" example:"segredo123"`
}

// RegisterComercianteRequest representa o cadastro de um comerciante
type RegisterComercianteRequest struct {
	Cnpj          string `json:"cnpj" binding:"required" example:"12.345.678/0001-95"`
	NomeFantasia  string `json:"nome_fantasia" binding:"required" example:"Padaria do João"`
	RazaoSocial   string `json:"razao_social" binding:"required" example:"João Pães LTDA"`
	Contato       string `json:"contato" binding:"required" example:"(45) 3277-1234"`
	Email         string `json:"email" binding:"required,email" example:"contato@padaria.com.br"`
	Endereco      string `json:"endereco" binding:"required" example:"Av. Brasil, 456"`
	Bairro        string `json:"bairro" binding:"required" example:"Jardim Europa"`
	Cep           string `json:"cep" binding:"required" example:"85900-000"`
	Uf            string `json:"uf" binding:"required,len=2" example:"PR"`
	Cidade        string `json:"cidade" binding:"required" example:"Toledo"`
	Categoria     string `json:"categoria" binding:"required" example:"Alimentação"`
	Senha         string `json:"senha" binding:"required,min=6" example:"segredo123"`
	ConfirmaSenha string `json:"confirma_senha" binding:"required" example:"segredo123"`
}

// HandleCadastroFunc devolve um handler Gin para as rotas de cadastro
func HandleCadastroFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCadastroController(ctx, container)

		switch method {
		case "registerAssociado":
			controller.RegisterAssociado()
		case "registerComerciante":
			controller.RegisterComerciante()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// RegisterAssociado cadastra um novo associado
// @Summary      Cadastro de associado
// @Description  Cria a conta de um associado com papel fixo de associado
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterAssociadoRequest true "Dados do associado"
// @Success      200  {object}  response.Response  "Conta criada"
// @Failure      400  {object}  ErrorResponse  "Requisição inválida"
// @Failure      409  {object}  ErrorResponse  "CPF ou email já cadastrado"
// @Router       /api/auth/cadastro/associado [post]
func (c *CadastroController) RegisterAssociado() {
	var req RegisterAssociadoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parâmetros de cadastro inválidos", nil)
		return
	}

	if req.Senha != req.ConfirmaSenha {
		response.Fail(c.Ctx, code.ErrSenhasNaoConferem, nil)
		return
	}

	cpf, err := parseDocumento(req.Cpf)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "CPF inválido", nil)
		return
	}

	nascimento, err := parseData(req.DataNascimento)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "data de nascimento inválida, use AAAA-MM-DD", nil)
		return
	}

	associado := &models.Associado{
		Cpf:            cpf,
		Nome:           req.Nome,
		DataNascimento: nascimento,
		Celular:        req.Celular,
		Email:          req.Email,
		Endereco:       req.Endereco,
		Bairro:         req.Bairro,
		Cep:            req.Cep,
		Uf:             req.Uf,
		Cidade:         req.Cidade,
		Senha:          req.Senha,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.RegisterAssociado(associado); err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"cpf_associado": associado.Cpf,
		"nome":          associado.Nome,
		"email":         associado.Email,
	})
}

// RegisterComerciante cadastra um novo comerciante
// @Summary      Cadastro de comerciante
// @Description  Cria a conta de um comerciante vinculada a uma categoria existente
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterComercianteRequest true "Dados do comerciante"
// @Success      200  {object}  response.Response  "Conta criada"
// @Failure      400  {object}  ErrorResponse  "Requisição inválida"
// @Failure      409  {object}  ErrorResponse  "CNPJ ou email já cadastrado"
// @Router       /api/auth/cadastro/comerciante [post]
func (c *CadastroController) RegisterComerciante() {
	var req RegisterComercianteRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parâmetros de cadastro inválidos", nil)
		return
	}

	if req.Senha != req.ConfirmaSenha {
		response.Fail(c.Ctx, code.ErrSenhasNaoConferem, nil)
		return
	}

	cnpj, err := parseDocumento(req.Cnpj)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "CNPJ inválido", nil)
		return
	}

	comercio := &models.Comercio{
		Cnpj:         cnpj,
		NomeFantasia: req.NomeFantasia,
		RazaoSocial:  req.RazaoSocial,
		Contato:      req.Contato,
		Email:        req.Email,
		Endereco:     req.Endereco,
		Bairro:       req.Bairro,
		Cep:          req.Cep,
		Uf:           req.Uf,
		Cidade:       req.Cidade,
		Senha:        req.Senha,
	}

	authService := c.Container.GetService("auth").(services.InterfaceAuthService)
	if err := authService.RegisterComerciante(comercio, req.Categoria); err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"cnpj_comercio": comercio.Cnpj,
		"nome_fantasia": comercio.NomeFantasia,
		"email":         comercio.Email,
	})
}
