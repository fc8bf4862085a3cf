package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumento(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado uint64
	}{
		{"123.456.789-09", 12345678909},
		{"12345678909", 12345678909},
		{"12.345.678/0001-95", 12345678000195},
		{" 12345678000195 ", 12345678000195},
	}

	for _, tt := range tests {
		documento, err := parseDocumento(tt.entrada)
		require.NoError(t, err, "entrada %q", tt.entrada)
		assert.Equal(t, tt.esperado, documento)
	}
}

func TestParseDocumentoSemDigitos(t *testing.T) {
	_, err := parseDocumento("abc")
	assert.Error(t, err)

	_, err = parseDocumento("")
	assert.Error(t, err)
}

func TestParseData(t *testing.T) {
	data, err := parseData("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 2026, data.Year())
	assert.Equal(t, 9, int(data.Month()))
	assert.Equal(t, 1, data.Day())

	_, err = parseData("01/09/2026")
	assert.Error(t, err)
}
