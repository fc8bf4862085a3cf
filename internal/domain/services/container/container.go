package container

import (
	"sync"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/domain/services"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/pkg/logger"

	"gorm.io/gorm"
)

// ServiceContainer gerencia a injeção de dependência dos serviços
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// Serviços base
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Serviços de negócio
	authService    services.InterfaceAuthService
	cupomService   services.InterfaceCupomService
	reservaService services.InterfaceReservaService

	mu sync.RWMutex
}

// NewServiceContainer cria um novo container de serviços
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("conexão com o banco de dados é nula")
	}
	if cfg == nil {
		panic("configuração é nula")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices inicializa todos os serviços
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config)

	// O cache é opcional: se o Redis não responder, os serviços seguem
	// consultando o banco diretamente
	redisService := services.NewRedisService(c.config)
	if err := redisService.Ping(); err != nil {
		logger.Warning("Redis indisponível (%v), cache de listagens desativado", err)
		redisService = nil
	}
	c.redisService = redisService

	c.authService = services.NewAuthService(c.db, c.config, c.jwtService)
	c.cupomService = services.NewCupomService(c.db, c.config, c.redisService)
	c.reservaService = services.NewReservaService(c.db, c.config, c.redisService)
}

// GetService devolve o serviço pelo nome
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "auth":
		return c.authService
	case "cupom":
		return c.cupomService
	case "reserva":
		return c.reservaService
	default:
		return nil
	}
}

// SetService substitui um serviço pelo nome; usado nos testes para
// injetar implementações fake.
func (c *ServiceContainer) SetService(name string, svc interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch name {
	case "jwt":
		c.jwtService, _ = svc.(services.InterfaceJWTService)
	case "redis":
		c.redisService, _ = svc.(services.InterfaceRedisService)
	case "auth":
		c.authService, _ = svc.(services.InterfaceAuthService)
	case "cupom":
		c.cupomService, _ = svc.(services.InterfaceCupomService)
	case "reserva":
		c.reservaService, _ = svc.(services.InterfaceReservaService)
	}
}

// GetDB devolve a conexão com o banco
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
