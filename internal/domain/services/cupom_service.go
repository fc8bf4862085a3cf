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

// Tentativas de inserção antes de desistir de gerar um código único
const maxTentativasCodigo = 3

// InterfaceCupomService define o serviço de cupons
type InterfaceCupomService interface {
	CreateCupom(cnpj uint64, titulo string, percentual float64, inicio, termino time.Time) (*models.Cupom, error)
	GetCuponsByComercio(cnpj uint64) ([]models.Cupom, error)
	GetCuponsDisponiveis() ([]models.Cupom, error)
}

// CupomService provê criação e listagem de cupons
type CupomService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService
}

// NewCupomService cria um novo serviço de cupons
func NewCupomService(db *gorm.DB, cfg *config.Config, cache InterfaceRedisService) InterfaceCupomService {
	return &CupomService{
		DB:     db,
		Config: cfg,
		Cache:  cache,
	}
}

// ValidarDatasCupom aplica a política de vigência: início não pode ser
// anterior a hoje e término deve ser estritamente posterior ao início.
func ValidarDatasCupom(inicio, termino, hoje time.Time) error {
	inicio = truncarData(inicio)
	termino = truncarData(termino)
	hoje = truncarData(hoje)

	if inicio.Before(hoje) {
		return apperr.New(apperr.ErrCupomDatasInvalidas)
	}
	if !termino.After(inicio) {
		return apperr.New(apperr.ErrCupomDatasInvalidas)
	}
	return nil
}

// CreateCupom valida os dados, gera o código e insere o cupom. Colisão
// de código é resolvida gerando outro e tentando de novo, até o limite.
func (s *CupomService) CreateCupom(cnpj uint64, titulo string, percentual float64, inicio, termino time.Time) (*models.Cupom, error) {
	if titulo == "" {
		return nil, apperr.New(apperr.ErrValidation)
	}
	if percentual < 1 || percentual > 100 {
		return nil, apperr.New(apperr.ErrValidation)
	}

	hoje := truncarData(time.Now())
	if err := ValidarDatasCupom(inicio, termino, hoje); err != nil {
		return nil, err
	}

	for tentativa := 0; tentativa < maxTentativasCodigo; tentativa++ {
		codigo, err := GerarCodigoCupom(time.Now())
		if err != nil {
			return nil, apperr.Wrap(apperr.ErrCupomGeracaoCodigo, err)
		}

		cupom := &models.Cupom{
			NumCupom:           codigo,
			Titulo:             titulo,
			PercentualDesconto: percentual,
			DataEmissao:        hoje,
			DataInicio:         truncarData(inicio),
			DataTermino:        truncarData(termino),
			CnpjComercio:       cnpj,
		}

		err = s.DB.Create(cupom).Error
		if err == nil {
			s.invalidarCacheDisponiveis()
			return cupom, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Warning("colisão de código de cupom (%s), gerando outro", codigo)
			continue
		}
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	return nil, apperr.New(apperr.ErrCupomGeracaoCodigo)
}

// GetCuponsByComercio lista os cupons emitidos pelo comércio
func (s *CupomService) GetCuponsByComercio(cnpj uint64) ([]models.Cupom, error) {
	var cupons []models.Cupom
	err := s.DB.Where("cnpj_comercio = ?", cnpj).
		Order("dta_emissao_cupom DESC, num_cupom").
		Find(&cupons).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}
	return cupons, nil
}

// GetCuponsDisponiveis lista cupons com término hoje-ou-depois e sem
// reserva vigente, já com o comércio embutido. O resultado fica em cache
// por pouco tempo; falha de cache degrada para a consulta direta.
func (s *CupomService) GetCuponsDisponiveis() ([]models.Cupom, error) {
	if s.Cache != nil {
		var cupons []models.Cupom
		if err := s.Cache.GetCuponsDisponiveis(&cupons); err == nil {
			return cupons, nil
		}
	}

	hoje := truncarData(time.Now())

	var cupons []models.Cupom
	err := s.DB.Preload("Comercio").
		Joins("LEFT JOIN cupom_associado ON cupom_associado.num_cupom = cupom.num_cupom").
		Where("cupom_associado.id_cupom_associado IS NULL").
		Where("dta_termino_cupom >= ?", hoje).
		Order("dta_termino_cupom, cupom.num_cupom").
		Find(&cupons).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrDatabase, err)
	}

	if s.Cache != nil {
		if err := s.Cache.CacheCuponsDisponiveis(cupons); err != nil {
			logger.Warning("falha ao gravar cache de cupons disponíveis: %v", err)
		}
	}
	return cupons, nil
}

func (s *CupomService) invalidarCacheDisponiveis() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.InvalidateCuponsDisponiveis(); err != nil {
		logger.Warning("falha ao invalidar cache de cupons disponíveis: %v", err)
	}
}
