package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

const (
	cuponsDisponiveisKey = "cupons:disponiveis"
	cuponsDisponiveisTTL = 30 * time.Second
)

// InterfaceRedisService define o serviço de cache
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheCuponsDisponiveis(cupons interface{}) error
	GetCuponsDisponiveis(dest interface{}) error
	InvalidateCuponsDisponiveis() error
	Ping() error
}

// RedisService provê o cache de listagens via Redis
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService cria um novo serviço de cache
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "",
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// Set grava um valor em JSON com prazo de expiração
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// Get lê um valor e o decodifica de JSON
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(val), dest)
}

// Delete remove uma chave
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// CacheCuponsDisponiveis grava a listagem de cupons disponíveis
func (s *RedisService) CacheCuponsDisponiveis(cupons interface{}) error {
	return s.Set(cuponsDisponiveisKey, cupons, cuponsDisponiveisTTL)
}

// GetCuponsDisponiveis lê a listagem de cupons disponíveis do cache
func (s *RedisService) GetCuponsDisponiveis(dest interface{}) error {
	return s.Get(cuponsDisponiveisKey, dest)
}

// InvalidateCuponsDisponiveis descarta a listagem após mutações
func (s *RedisService) InvalidateCuponsDisponiveis() error {
	return s.Delete(cuponsDisponiveisKey)
}

// Ping verifica a conectividade com o Redis
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
