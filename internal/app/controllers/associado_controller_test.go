package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	apperr "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const cpfDeTeste = uint64(12345678909)

func TestGetCuponsDisponiveis(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("cupom", &fakeCupomService{
		getCuponsDisponiveisFn: func() ([]models.Cupom, error) {
			return []models.Cupom{
				{NumCupom: "ABC123DEF456", Titulo: "20% em pães artesanais", PercentualDesconto: 20},
			}, nil
		},
	})

	r := gin.New()
	r.GET("/api/associado/cupons/disponiveis", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "getCuponsDisponiveis"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/associado/cupons/disponiveis", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ABC123DEF456")
}

func TestGetCuponsDisponiveisComPaginacao(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("cupom", &fakeCupomService{
		getCuponsDisponiveisFn: func() ([]models.Cupom, error) {
			return []models.Cupom{
				{NumCupom: "AAAAAAAAAAA1"},
				{NumCupom: "AAAAAAAAAAA2"},
				{NumCupom: "AAAAAAAAAAA3"},
			}, nil
		},
	})

	r := gin.New()
	r.GET("/api/associado/cupons/disponiveis", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "getCuponsDisponiveis"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/associado/cupons/disponiveis?pageNum=2&pageSize=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AAAAAAAAAAA3")
	assert.NotContains(t, w.Body.String(), "AAAAAAAAAAA1")
	assert.Contains(t, w.Body.String(), `"total":3`)
}

func TestReservarCupomComSucesso(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("reserva", &fakeReservaService{
		reservarFn: func(numCupom string, cpf uint64) (*models.CupomAssociado, error) {
			assert.Equal(t, "ABC123DEF456", numCupom)
			assert.Equal(t, cpfDeTeste, cpf)
			return &models.CupomAssociado{
				ID:           1,
				NumCupom:     numCupom,
				CpfAssociado: cpf,
				DataReserva:  time.Now(),
			}, nil
		},
	})

	r := gin.New()
	r.POST("/api/associado/cupons/:num_cupom/reservar", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "reservarCupom"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/associado/cupons/ABC123DEF456/reservar", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReservarCupomDesfechosDiferenciados(t *testing.T) {
	tests := []struct {
		nome   string
		erro   int
		status int
	}{
		{"cupom inexistente", apperr.ErrCupomNotFound, http.StatusNotFound},
		{"cupom já reservado", apperr.ErrCupomJaReservado, http.StatusConflict},
		{"cupom fora da vigência", apperr.ErrCupomForaVigencia, http.StatusConflict},
		{"cupom expirado", apperr.ErrCupomExpirado, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			c := novoContainerDeTeste(t)
			c.SetService("reserva", &fakeReservaService{
				reservarFn: func(numCupom string, cpf uint64) (*models.CupomAssociado, error) {
					return nil, apperr.New(tt.erro)
				},
			})

			r := gin.New()
			r.POST("/api/associado/cupons/:num_cupom/reservar", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "reservarCupom"))

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/associado/cupons/ABC123DEF456/reservar", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), apperr.GetMessage(tt.erro))
		})
	}
}

func TestReservarCupomCodigoComTamanhoErrado(t *testing.T) {
	c := novoContainerDeTeste(t)
	chamado := false
	c.SetService("reserva", &fakeReservaService{
		reservarFn: func(numCupom string, cpf uint64) (*models.CupomAssociado, error) {
			chamado = true
			return nil, nil
		},
	})

	r := gin.New()
	r.POST("/api/associado/cupons/:num_cupom/reservar", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "reservarCupom"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/associado/cupons/CURTO/reservar", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, chamado)
}

func TestGetMinhasReservas(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("reserva", &fakeReservaService{
		listarPorAssociadoFn: func(cpf uint64) ([]models.CupomAssociado, error) {
			assert.Equal(t, cpfDeTeste, cpf)
			return []models.CupomAssociado{{ID: 7, NumCupom: "ABC123DEF456", CpfAssociado: cpf}}, nil
		},
	})

	r := gin.New()
	r.GET("/api/associado/reservas", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "getMinhasReservas"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/associado/reservas", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ABC123DEF456")
}

func TestRemoverReserva(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("reserva", &fakeReservaService{
		removerFn: func(id uint, cpf uint64) error {
			assert.Equal(t, uint(7), id)
			assert.Equal(t, cpfDeTeste, cpf)
			return nil
		},
	})

	r := gin.New()
	r.DELETE("/api/associado/reservas/:id", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "removerReserva"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/associado/reservas/7", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRemoverReservaDeOutroAssociado(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("reserva", &fakeReservaService{
		removerFn: func(id uint, cpf uint64) error {
			return apperr.New(apperr.ErrReservaNaoPertence)
		},
	})

	r := gin.New()
	r.DELETE("/api/associado/reservas/:id", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "removerReserva"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/associado/reservas/7", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRemoverReservaJaUtilizada(t *testing.T) {
	c := novoContainerDeTeste(t)
	c.SetService("reserva", &fakeReservaService{
		removerFn: func(id uint, cpf uint64) error {
			return apperr.New(apperr.ErrReservaJaUtilizada)
		},
	})

	r := gin.New()
	r.DELETE("/api/associado/reservas/:id", comDocumento(cpfDeTeste), HandleAssociadoFunc(c, "removerReserva"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/associado/reservas/7", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
}
