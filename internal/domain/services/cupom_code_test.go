package services

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGerarCodigoCupomTemDozeCaracteres(t *testing.T) {
	codigo, err := GerarCodigoCupom(time.Now())
	require.NoError(t, err)
	assert.Len(t, codigo, CupomCodeLength)
}

func TestGerarCodigoCupomUsaAlfabetoBase36(t *testing.T) {
	codigo, err := GerarCodigoCupom(time.Now())
	require.NoError(t, err)

	for _, r := range codigo {
		assert.Contains(t, base36Alphabet, string(r), "caractere fora do alfabeto: %q", r)
	}
}

func TestGerarCodigoCupomComecaComTimestamp(t *testing.T) {
	agora := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)
	esperado := strings.ToUpper(strconv.FormatInt(agora.UnixMilli(), 36))

	codigo, err := GerarCodigoCupom(agora)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(codigo, esperado),
		"código %q deveria começar com %q", codigo, esperado)
}

func TestGerarCodigoCupomRaramenteColide(t *testing.T) {
	agora := time.Now()
	vistos := make(map[string]bool)

	for i := 0; i < 500; i++ {
		codigo, err := GerarCodigoCupom(agora)
		require.NoError(t, err)
		assert.False(t, vistos[codigo], "código repetido: %s", codigo)
		vistos[codigo] = true
	}
}

func TestTruncarData(t *testing.T) {
	meioDia := time.Date(2026, 8, 29, 12, 45, 30, 999, time.Local)
	truncada := truncarData(meioDia)

	assert.Equal(t, 2026, truncada.Year())
	assert.Equal(t, time.August, truncada.Month())
	assert.Equal(t, 29, truncada.Day())
	assert.Zero(t, truncada.Hour())
	assert.Zero(t, truncada.Minute())
	assert.Zero(t, truncada.Second())
	assert.Zero(t, truncada.Nanosecond())
	assert.Equal(t, time.UTC, truncada.Location())
}

func TestTruncarDataNormalizaFusos(t *testing.T) {
	// O mesmo dia de calendário em fusos diferentes tem que truncar para
	// o mesmo instante, senão a meia-noite local de um fuso negativo fica
	// "depois" da meia-noite UTC vinda do banco e da requisição
	brasilia := time.FixedZone("-03", -3*60*60)

	noBrasil := time.Date(2026, 8, 28, 23, 15, 0, 0, brasilia)
	emUTC := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	assert.True(t, truncarData(noBrasil).Equal(truncarData(emUTC)))
}
