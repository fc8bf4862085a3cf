package controllers

import (
	"testing"
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services/container"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// novoContainerDeTeste monta um contêiner com banco fictício para os
// controllers; os serviços reais são substituídos por fakes via SetService.
func novoContainerDeTeste(t *testing.T) *container.ServiceContainer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecretKey: "chave-de-teste",
		RedisHost:    "localhost",
		RedisPort:    "1",
	}

	return container.NewServiceContainer(db, cfg)
}

// comDocumento simula o middleware de autenticação gravando o documento
func comDocumento(documento uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("documento", documento)
		c.Next()
	}
}

// fakeAuthService implementa InterfaceAuthService com funções plugáveis
type fakeAuthService struct {
	registerAssociadoFn   func(*models.Associado) error
	registerComercianteFn func(*models.Comercio, string) error
	loginFn               func(string, string) (*services.LoginResult, error)
	getCategoriasFn       func() ([]models.Categoria, error)
}

func (f *fakeAuthService) RegisterAssociado(a *models.Associado) error {
	return f.registerAssociadoFn(a)
}

func (f *fakeAuthService) RegisterComerciante(c *models.Comercio, categoria string) error {
	return f.registerComercianteFn(c, categoria)
}

func (f *fakeAuthService) Login(email, senha string) (*services.LoginResult, error) {
	return f.loginFn(email, senha)
}

func (f *fakeAuthService) GetCategorias() ([]models.Categoria, error) {
	return f.getCategoriasFn()
}

// fakeCupomService implementa InterfaceCupomService com funções plugáveis
type fakeCupomService struct {
	createCupomFn          func(uint64, string, float64, time.Time, time.Time) (*models.Cupom, error)
	getCuponsByComercioFn  func(uint64) ([]models.Cupom, error)
	getCuponsDisponiveisFn func() ([]models.Cupom, error)
}

func (f *fakeCupomService) CreateCupom(cnpj uint64, titulo string, percentual float64, inicio, termino time.Time) (*models.Cupom, error) {
	return f.createCupomFn(cnpj, titulo, percentual, inicio, termino)
}

func (f *fakeCupomService) GetCuponsByComercio(cnpj uint64) ([]models.Cupom, error) {
	return f.getCuponsByComercioFn(cnpj)
}

func (f *fakeCupomService) GetCuponsDisponiveis() ([]models.Cupom, error) {
	return f.getCuponsDisponiveisFn()
}

// fakeReservaService implementa InterfaceReservaService com funções plugáveis
type fakeReservaService struct {
	reservarFn           func(string, uint64) (*models.CupomAssociado, error)
	removerFn            func(uint, uint64) error
	utilizarFn           func(uint, uint64) (*models.CupomAssociado, error)
	listarPorAssociadoFn func(uint64) ([]models.CupomAssociado, error)
	listarPorComercioFn  func(uint64) ([]models.CupomAssociado, error)
}

func (f *fakeReservaService) Reservar(numCupom string, cpf uint64) (*models.CupomAssociado, error) {
	return f.reservarFn(numCupom, cpf)
}

func (f *fakeReservaService) Remover(id uint, cpf uint64) error {
	return f.removerFn(id, cpf)
}

func (f *fakeReservaService) Utilizar(id uint, cnpj uint64) (*models.CupomAssociado, error) {
	return f.utilizarFn(id, cnpj)
}

func (f *fakeReservaService) ListarPorAssociado(cpf uint64) ([]models.CupomAssociado, error) {
	return f.listarPorAssociadoFn(cpf)
}

func (f *fakeReservaService) ListarPorComercio(cnpj uint64) ([]models.CupomAssociado, error) {
	return f.listarPorComercioFn(cnpj)
}
