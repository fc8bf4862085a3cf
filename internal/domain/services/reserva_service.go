package services

import (
	"errors"
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/models"
	apperr "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/pkg/logger"

	"gorm.io/gorm"
)

// InterfaceReservaService define o serviço de reservas
type InterfaceReservaService interface {
	Reservar(numCupom string, cpf uint64) (*models.CupomAssociado, error)
	Remover(id uint, cpf uint64) error
	Utilizar(id uint, cnpj uint64) (*models.CupomAssociado, error)
	ListarPorAssociado(cpf uint64) ([]models.CupomAssociado, error)
	ListarPorComercio(cnpj uint64) ([]models.CupomAssociado, error)
}

// ReservaService provê reserva, cancelamento e resgate de cupons
type ReservaService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService
}

// NewReservaService cria um novo serviço de reservas
func NewReservaService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceReservaService {
	return &ReservaService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// Reservar cria a reserva de um cupom para o associado. Cada condição
// de recusa tem um desfecho próprio: cupom inexistente, fora da
// vigência, expirado ou já reservado.
func (s *ReservaService) Reservar(numCupom string, cpf uint64) (*models.CupomAssociado, error) {
	hoje := truncarData(time.Now())
	var reserva *models.CupomAssociado

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cupom models.Cupom
		if err := tx.First(&cupom, "num_cupom = ?", numCupom).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.ErrCupomNotFound)
			}
			return apperr.Wrap(apperr.ErrDatabase, err)
		}

		if hoje.Before(truncarData(cupom.DataInicio)) {
			return apperr.New(apperr.ErrCupomForaVigencia)
		}
		if hoje.After(truncarData(cupom.DataTermino)) {
			return apperr.New(apperr.ErrCupomExpirado)
		}

		var count int64
		if err := tx.Model(&models.CupomAssociado{}).Where("num_cupom = ?", numCupom).Count(&count).Error; err != nil {
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		if count > 0 {
			return apperr.New(apperr.ErrCupomJaReservado)
		}

		reserva = &models.CupomAssociado{
			NumCupom:     numCupom,
			CpfAssociado: cpf,
			DataReserva:  hoje,
		}
		if err := tx.Create(reserva).Error; err != nil {
			// Corrida entre duas reservas simultâneas: o índice único
			// decide, e o perdedor recebe o mesmo desfecho
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.New(apperr.ErrCupomJaReservado)
			}
			return apperr.Wrap(apperr.ErrDatabase, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidarCacheDisponiveis()
	return reserva, nil
}

// Remover cancela uma reserva não utilizada do próprio associado.
// Reservas já resgatadas são histórico e não podem ser apagadas.
func (s *ReservaService) Remover(id uint, cpf uint64) error {
	var reserva models.CupomAssociado
	if err := s.DB.First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.ErrReservaNotFound)
		}
		return apperr.Wrap(apperr.ErrDatabase, err)
	}

	if reserva.CpfAssociado != cpf {
		return apperr.New(apperr.ErrReservaNaoPertence)
	}
	if reserva.Utilizada() {
		return apperr.New(apperr.ErrReservaJaUtilizada)
	}

	if err := s.DB.Delete(&reserva).Error; err != nil {
		return apperr.Wrap(apperr.ErrDatabase, err)
	}

	s.invalidarCacheDisponiveis()
	return nil
}

// Utilizar registra o resgate da reserva no comércio. Só o comércio
// emissor do cupom pode resgatar, e apenas uma vez.
func (s *ReservaService) Utilizar(id uint, cnpj uint64) (*models.CupomAssociado, error) {
	var reserva models.CupomAssociado
	if err := s.DB.Preload("Cupom").First(&reserva, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ErrReservaNotFound)
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	if reserva.Cupom == nil || reserva.Cupom.CnpjComercio != cnpj {
		return nil, apperr.New(apperr.ErrCupomNaoPertence)
	}
	if reserva.Utilizada() {
		return nil, apperr.New(apperr.ErrReservaJaUtilizada)
	}

	hoje := truncarData(time.Now())
	if err := s.DB.Model(&reserva).Update("dta_uso_cupom_associado", hoje).Error; err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	reserva.DataUso = &hoje
	return &reserva, nil
}

// ListarPorAssociado lista as reservas do associado com cupom e
// comércio embutidos em uma única consulta.
func (s *ReservaService) ListarPorAssociado(cpf uint64) ([]models.CupomAssociado, error) {
	var reservas []models.CupomAssociado
	err := s.DB.Preload("Cupom.Comercio").
		Where("cpf_associado = ?", cpf).
		Order("dta_cupom_associado DESC, id_cupom_associado DESC").
		Find(&reservas).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return reservas, nil
}

// ListarPorComercio lista as reservas contra cupons do comércio, com o
// nome do associado embutido. Substitui a antiga busca em duas fases
// seguida de junção em memória.
func (s *ReservaService) ListarPorComercio(cnpj uint64) ([]models.CupomAssociado, error) {
	var reservas []models.CupomAssociado
	err := s.DB.Preload("Cupom").Preload("Associado").
		Joins("JOIN cupom ON cupom.num_cupom = cupom_associado.num_cupom").
		Where("cupom.cnpj_comercio = ?", cnpj).
		Order("dta_cupom_associado DESC, id_cupom_associado DESC").
		Find(&reservas).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return reservas, nil
}

func (s *ReservaService) invalidarCacheDisponiveis() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateCuponsDisponiveis(); err != nil {
		logger.Warning("falha ao invalidar cache de cupons disponíveis: %v", err)
	}
}
