package services

import (
	"testing"

	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func novoJWTServiceDeTeste() InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: "chave-de-teste"})
}

func TestGenerateTokenEExtractClaims(t *testing.T) {
	svc := novoJWTServiceDeTeste()

	token, err := svc.GenerateToken(12345678909, RoleAssociado, "Maria da Silva", "maria@exemplo.com.br")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)

	assert.Equal(t, uint64(12345678909), claims.Documento)
	assert.Equal(t, RoleAssociado, claims.Role)
	assert.Equal(t, "Maria da Silva", claims.Nome)
	assert.Equal(t, "maria@exemplo.com.br", claims.Email)
	assert.Equal(t, "cupom-facil-http-service", claims.Issuer)
}

func TestExtractClaimsComercianteCarregaCnpj(t *testing.T) {
	svc := novoJWTServiceDeTeste()

	token, err := svc.GenerateToken(12345678000195, RoleComerciante, "Padaria do João", "contato@padaria.com.br")
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)

	assert.Equal(t, uint64(12345678000195), claims.Documento)
	assert.Equal(t, RoleComerciante, claims.Role)
}

func TestValidateTokenRejeitaTokenAdulterado(t *testing.T) {
	svc := novoJWTServiceDeTeste()

	token, err := svc.GenerateToken(1, RoleAssociado, "x", "x@x.com")
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "abc")
	assert.Error(t, err)
}

func TestValidateTokenRejeitaOutraChave(t *testing.T) {
	emissor := NewJWTService(&config.Config{JWTSecretKey: "chave-a"})
	validador := NewJWTService(&config.Config{JWTSecretKey: "chave-b"})

	token, err := emissor.GenerateToken(1, RoleAssociado, "x", "x@x.com")
	require.NoError(t, err)

	_, err = validador.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejeitaLixo(t *testing.T) {
	svc := novoJWTServiceDeTeste()

	_, err := svc.ValidateToken("nao-e-um-token")
	assert.Error(t, err)
}
