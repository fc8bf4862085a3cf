package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config reúne toda a configuração da aplicação
type Config struct {
	// Tipo de ambiente
	EnvType string

	// Banco de dados
	DBHost          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBPort          string
	DBMigrationMode string // modo de migração: "auto"(padrão), "drop"(recria tudo)

	// Servidor
	ServerPort string

	// Redis
	RedisHost string
	RedisPort string
	RedisDB   int

	// Autenticação JWT
	JWTSecretKey string

	// CORS
	CORSAllowOrigin string
}

// LoadConfig carrega a configuração das variáveis de ambiente conforme o ENV_TYPE
func LoadConfig() *Config {
	// LOCAL é o ambiente padrão quando ENV_TYPE não está definido
	envType := getEnv("ENV_TYPE", "LOCAL")
	prefix := ""

	if strings.ToUpper(envType) == "LOCAL" {
		prefix = "LOCAL_"
	} else if strings.ToUpper(envType) == "SERVER" {
		prefix = "SERVER_"
	} else {
		fmt.Printf("Aviso: ENV_TYPE '%s' desconhecido, usando o ambiente LOCAL\n", envType)
		prefix = "LOCAL_"
		envType = "LOCAL"
	}

	fmt.Printf("Carregando configuração do ambiente: %s\n", envType)

	return &Config{
		EnvType: envType,

		// Variáveis com prefixo do ambiente têm precedência
		DBHost:          getEnv(prefix+"DB_HOST", getEnv("DB_HOST", "localhost")),
		DBUser:          getEnv(prefix+"DB_USER", getEnv("DB_USER", "postgres")),
		DBPassword:      getEnv(prefix+"DB_PASSWORD", getEnv("DB_PASSWORD", "postgres")),
		DBName:          getEnv(prefix+"DB_NAME", getEnv("DB_NAME", "cupom_facil")),
		DBPort:          getEnv(prefix+"DB_PORT", getEnv("DB_PORT", "5432")),
		DBMigrationMode: getEnv(prefix+"DB_MIGRATION_MODE", getEnv("DB_MIGRATION_MODE", "auto")),

		// Servidor
		ServerPort: getEnv(prefix+"SERVER_PORT", getEnv("SERVER_PORT", "8080")),

		// Redis
		RedisHost: getEnv(prefix+"REDIS_HOST", getEnv("REDIS_HOST", "localhost")),
		RedisPort: getEnv(prefix+"REDIS_PORT", getEnv("REDIS_PORT", "6379")),
		RedisDB:   getEnvAsInt(prefix+"REDIS_DB", getEnvAsInt("REDIS_DB", 0)),

		// JWT
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "cupom-facil-secret-key-change-in-production"),

		// CORS
		CORSAllowOrigin: getEnv("CORS_ALLOW_ORIGIN", "http://localhost:5173"),
	}
}

// GetConfig devolve a configuração da aplicação como singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN monta a string de conexão com o Postgres
func (c *Config) GetDSN() string {
	return "host=" + c.DBHost + " user=" + c.DBUser + " password=" + c.DBPassword +
		" dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=disable TimeZone=America/Sao_Paulo"
}

// GetRedisAddr devolve o endereço do Redis
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// getEnv lê uma variável de ambiente com valor padrão
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt lê uma variável de ambiente numérica com valor padrão
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
