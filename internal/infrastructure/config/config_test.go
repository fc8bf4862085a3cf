package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigPrefixoTemPrecedencia(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("LOCAL_DB_HOST", "db.local")
	t.Setenv("DB_HOST", "db.global")
	t.Setenv("LOCAL_REDIS_DB", "3")
	t.Setenv("REDIS_DB", "9")

	cfg := LoadConfig()

	assert.Equal(t, "db.local", cfg.DBHost)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadConfigSemPrefixoUsaVariavelGlobal(t *testing.T) {
	t.Setenv("ENV_TYPE", "LOCAL")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()

	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoadConfigEnvTypeDesconhecidoCaiNoLocal(t *testing.T) {
	t.Setenv("ENV_TYPE", "QA")
	t.Setenv("LOCAL_SERVER_PORT", "9090")

	cfg := LoadConfig()

	assert.Equal(t, "LOCAL", cfg.EnvType)
	assert.Equal(t, "9090", cfg.ServerPort)
}
