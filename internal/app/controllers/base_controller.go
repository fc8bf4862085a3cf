package controllers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const dataLayout = "2006-01-02"

// parseDocumento aceita CPF ou CNPJ com ou sem máscara
func parseDocumento(s string) (uint64, error) {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}

	digits := sb.String()
	if digits == "" {
		return 0, errors.New("documento sem dígitos")
	}

	return strconv.ParseUint(digits, 10, 64)
}

// parseData interpreta datas no formato AAAA-MM-DD
func parseData(s string) (time.Time, error) {
	return time.Parse(dataLayout, s)
}

// documentoFromContext lê o documento gravado pelo middleware de autenticação
func documentoFromContext(ctx *gin.Context) (uint64, bool) {
	value, exists := ctx.Get("documento")
	if !exists {
		return 0, false
	}

	documento, ok := value.(uint64)
	return documento, ok
}
