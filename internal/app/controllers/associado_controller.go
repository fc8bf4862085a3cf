package controllers

import (
	"strconv"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAssociadoController define o controlador das rotas do associado
type InterfaceAssociadoController interface {
	GetCuponsDisponiveis()
	ReservarCupom()
	GetMinhasReservas()
	RemoverReserva()
}

// AssociadoController trata as requisições do associado autenticado
type AssociadoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAssociadoController cria um novo controlador do associado
func NewAssociadoController(ctx *gin.Context, container *container.ServiceContainer) *AssociadoController {
	return &AssociadoController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAssociadoFunc devolve um handler Gin para as rotas do associado
func HandleAssociadoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAssociadoController(ctx, container)

		switch method {
		case "getCuponsDisponiveis":
			controller.GetCuponsDisponiveis()
		case "reservarCupom":
			controller.ReservarCupom()
		case "getMinhasReservas":
			controller.GetMinhasReservas()
		case "removerReserva":
			controller.RemoverReserva()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "método inválido", nil)
		}
	}
}

// GetCuponsDisponiveis lista os cupons vigentes ainda não reservados
// @Summary      Cupons disponíveis
// @Description  Lista cupons dentro da vigência e sem reserva, com os dados do comércio emissor
// @Tags         Associado
// @Produce      json
// @Security     BearerAuth
// @Param        pageNum   query int false "Página, a partir de 1"
// @Param        pageSize  query int false "Itens por página; omitido devolve tudo"
// @Success      200  {object}  response.Response  "Lista de cupons"
// @Failure      401  {object}  ErrorResponse  "Não autenticado"
// @Router       /api/associado/cupons/disponiveis [get]
func (c *AssociadoController) GetCuponsDisponiveis() {
	var pagina models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&pagina); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "parâmetros de paginação inválidos", nil)
		return
	}

	cupomService := c.Container.GetService("cupom").(services.InterfaceCupomService)

	cupons, err := cupomService.GetCuponsDisponiveis()
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	total := len(cupons)

	// Sem pageSize devolve a lista inteira em uma página
	if pagina.PageSize > 0 {
		if pagina.PageNum < 1 {
			pagina.PageNum = 1
		}
		inicio := (pagina.PageNum - 1) * pagina.PageSize
		if inicio > total {
			inicio = total
		}
		fim := inicio + pagina.PageSize
		if fim > total {
			fim = total
		}
		cupons = cupons[inicio:fim]
	} else {
		pagina.PageNum = 1
		pagina.PageSize = total
	}

	response.Success(c.Ctx, gin.H{
		"cupons":     cupons,
		"pagination": models.NewPaginationResult(total, pagina.PageNum, pagina.PageSize),
	})
}

// ReservarCupom reserva um cupom para o associado autenticado
// @Summary      Reservar cupom
// @Description  Reserva o cupom informado; falha se já reservado, expirado ou fora da vigência
// @Tags         Associado
// @Produce      json
// @Security     BearerAuth
// @Param        num_cupom path string true "Código do cupom"
// @Success      200  {object}  response.Response  "Reserva criada"
// @Failure      404  {object}  ErrorResponse  "Cupom não encontrado"
// @Failure      409  {object}  ErrorResponse  "Cupom já reservado ou fora da vigência"
// @Router       /api/associado/cupons/{num_cupom}/reservar [post]
func (c *AssociadoController) ReservarCupom() {
	cpf, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	numCupom := c.Ctx.Param("num_cupom")
	if len(numCupom) != services.CupomCodeLength {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "código de cupom inválido", nil)
		return
	}

	reservaService := c.Container.GetService("reserva").(services.InterfaceReservaService)

	reserva, err := reservaService.Reservar(numCupom, cpf)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reserva)
}

// GetMinhasReservas lista as reservas do associado autenticado
// @Summary      Minhas reservas
// @Description  Lista as reservas do associado com o cupom e o comércio emissor
// @Tags         Associado
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response  "Lista de reservas"
// @Failure      401  {object}  ErrorResponse  "Não autenticado"
// @Router       /api/associado/reservas [get]
func (c *AssociadoController) GetMinhasReservas() {
	cpf, ok := documentoFromContext(c.Ctx)
	if !ok {
		response.Unauthorized(c.Ctx)
		return
	}

	reservaService := c.Container.GetService("reserva").(services.InterfaceReservaService)

	reservas, err := reservaService.ListarPorAssociado(cpf)
	if err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, reservas)
}

// RemoverReserva desfaz uma reserva ainda não utilizada
// @Summary      Remover reserva
// @Description  Remove a reserva do próprio associado; reservas já utilizadas não podem ser removidas
// @Tags         Associado
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da reserva"
// @Success      200  {object}  response.Response  "Reserva removida"
// @Failure      403  {object}  ErrorResponse  "Reserva de outro associado"
// @Failure      409  {object}  ErrorResponse  "Reserva já utilizada"
// @Router       /api/associado/reservas/{id} [delete]
func (c *AssociadoController) RemoverReserva() {
	cpf, ok := documentoFromContext(c.Ctx)
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

	if err := reservaService.Remover(uint(id), cpf); err != nil {
		response.FailWithError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"id_cupom_associado": id})
}
