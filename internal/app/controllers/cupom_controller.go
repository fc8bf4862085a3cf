package controllers

import (
	"strconv"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceCupomController define o controlador das rotas do comerciante
type InterfaceCupomController interface {
	GetMeusCupons()
	CreateCupom()
	GetReservasDoComercio()
	UtilizarReserva()
}

// CupomController trata as requisições do comerciante autenticado
type CupomController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCupomController cria um novo controlador de cupons
func NewCupomController(ctx *gin.Context, container *container.ServiceContainer) *CupomController {
	return &CupomController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateCupomRequest representa a emissão de um cupom
type CreateCupomRequest struct {
	Titulo             string  `json:"titulo" binding:"required" example:"20% em pães artesanais"`
	PercentualDesconto float64 `json:"percentual_desconto" binding:"required" example:"20"`
	DataInicio         string  `json:"data_inicio" binding:"required" example:"2026-09-01"`
	DataTermino        string  `json:"data_termino" binding:"required" example:"2026-09-30"`
}

// HandleCupomFunc devolve um handler Gin para as rotas do comerciante
func HandleCupomFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCupomController(ctx, container)

		switch method {
		case "getMeusCupons":
			controller.GetMeusCupons()
		case "createCupom":
			controller.CreateCupom()
		case "getReservasDoComercio":
			controller.GetReservasDoComercio()
		case "utilizarReserva":
			controller.UtilizarReserva()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetMeusCupons lista os cupons emitidos pelo comerciante
// @Summary      Meus cupons
// @Description  Lista os cupons emitidos pelo comércio autenticado, com a reserva quando houver
// @Tags         Comerciante
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response  "Lista de cupons"
// @Failure      401  {object}  ErrorResponse  "Não autenticado"
// @Router       /api/comerciante/cupons [get]
func (c *CupomController) GetMeusCupons() {
	cnpj, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	cupomService := c.Container.GetService("cupom").(services.InterfaceCupomService)

	cupons, err := cupomService.GetCuponsByComercio(cnpj)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, cupons)
}

// CreateCupom emite um novo cupom de desconto
// @Summary      Emitir cupom
// @Description  Emite um cupom com código único de 12 caracteres e vigência informada
// @Tags         Comerciante
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCupomRequest true "Dados do cupom"
// @Success      200  {object}  response.Response  "Cupom emitido"
// @Failure      400  {object}  ErrorResponse  "Datas ou percentual inválidos"
// @Router       /api/comerciante/cupons [post]
func (c *CupomController) CreateCupom() {
	cnpj, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	var req CreateCupomRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "parâmetros do cupom inválidos", nil)
		return
	}

	inicio, err := parseData(req.DataInicio)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "data de início inválida, use AAAA-MM-DD", nil)
		return
	}

	termino, err := parseData(req.DataTermino)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "data de término inválida, use AAAA-MM-DD", nil)
		return
	}

	cupomService := c.Container.GetService("cupom").(services.InterfaceCupomService)

	cupom, err := cupomService.CreateCupom(cnpj, req.Titulo, req.PercentualDesconto, inicio, termino)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, cupom)
}

// GetReservasDoComercio lista as reservas dos cupons do comerciante
// @Summary      Reservas recebidas
// @Description  Lista as reservas feitas sobre os cupons do comércio, com os dados do associado
// @Tags         Comerciante
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response  "Lista de reservas"
// @Failure      401  {object}  ErrorResponse  "Não autenticado"
// @Router       /api/comerciante/reservas [get]
func (c *CupomController) GetReservasDoComercio() {
	cnpj, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	reservaService := c.Container.GetService("reserva").(services.InterfaceReservaService)

	reservas, err := reservaService.ListarPorComercio(cnpj)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reservas)
}

// UtilizarReserva registra o resgate de uma reserva no balcão
// @Summary      Utilizar reserva
// @Description  Marca a reserva como utilizada; falha se o cupom for de outro comércio ou já resgatado
// @Tags         Comerciante
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da reserva"
// @Success      200  {object}  response.Response  "Reserva utilizada"
// @Failure      403  {object}  ErrorResponse  "Cupom de outro comércio"
// @Failure      409  {object}  ErrorResponse  "Reserva já utilizada"
// @Router       /api/comerciante/reservas/{id}/utilizar [post]
func (c *CupomController) UtilizarReserva() {
	cnpj, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	id, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "identificador de reserva inválido", nil)
		return
	}

	reservaService := c.Container.GetService("reserva").(services.InterfaceReservaService)

	reserva, err := reservaService.Utilizar(uint(id), cnpj)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reserva)
}
