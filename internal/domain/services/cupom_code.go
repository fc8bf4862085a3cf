package services

import (
	"crypto/rand"
	"strconv"
	"strings"
	"time"
)

// Tamanho fixo do código do cupom e alfabeto base-36 usado nele.
const (
	CupomCodeLength = 12
	base36Alphabet  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GerarCodigoCupom compõe o código do cupom: timestamp em milissegundos
// na base 36 seguido de um sufixo aleatório, cortado em 12 caracteres.
// A unicidade final é garantida pela chave primária; em caso de colisão
// o chamador gera outro código e tenta de novo.
func GerarCodigoCupom(agora time.Time) (string, error) {
	timestamp := strings.ToUpper(strconv.FormatInt(agora.UnixMilli(), 36))

	sufixo, err := sufixoAleatorio(CupomCodeLength)
	if err != nil {
		return "", err
	}

	codigo := timestamp + sufixo
	return codigo[:CupomCodeLength], nil
}

// sufixoAleatorio devolve n caracteres aleatórios do alfabeto base-36
func sufixoAleatorio(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	out := make([]byte, n)
	for i, b := range buf {
		out[i] = base36Alphabet[int(b)%len(base36Alphabet)]
	}
	return string(out), nil
}

// truncarData reduz o instante à data do calendário, fixada na meia-noite
// UTC. Datas vindas do corpo da requisição e das colunas date do Postgres
// chegam como meia-noite UTC, enquanto time.Now() carrega o fuso do
// servidor; normalizar os dois lados para o mesmo fuso garante que as
// comparações de vigência aconteçam sempre entre datas de calendário.
func truncarData(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
