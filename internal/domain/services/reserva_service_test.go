package services

import (
	"testing"
	"time"

	apperr "github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/error/code"
	"github.com/GabrielPengoAssis/PraticaExtensionista5-Cupons/internal/infrastructure/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// novoBancoDeTeste abre um *gorm.DB sobre um banco simulado, com a mesma
// tradução de erros da conexão real, e devolve o controle das respostas
func novoBancoDeTeste(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

// hojeEmUTC devolve a data de calendário de hoje como meia-noite UTC,
// o mesmo formato em que as colunas date voltam do banco
func hojeEmUTC() time.Time {
	agora := time.Now()
	return time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
}

var colunasCupom = []string{
	"num_cupom", "tit_cupom", "per_desc_cupom",
	"dta_inicio_cupom", "dta_termino_cupom", "cnpj_comercio",
}

var colunasReserva = []string{
	"id_cupom_associado", "num_cupom", "cpf_associado",
	"dta_cupom_associado", "dta_uso_cupom_associado",
}

func linhaCupom(numCupom string, inicio, termino time.Time, cnpj uint64) *sqlmock.Rows {
	return sqlmock.NewRows(colunasCupom).
		AddRow(numCupom, "Desconto", 20.0, inicio, termino, cnpj)
}

func novoServicoReserva(t *testing.T) (InterfaceReservaService, sqlmock.Sqlmock) {
	t.Helper()
	gdb, mock := novoBancoDeTeste(t)
	return NewReservaService(gdb, &config.Config{}, nil), mock
}

func TestReservarCupomInexistente(t *testing.T) {
	svc, mock := novoServicoReserva(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).WillReturnRows(sqlmock.NewRows(colunasCupom))
	mock.ExpectRollback()

	_, err := svc.Reservar("AAAAAAAAAAA1", 1)
	assert.Equal(t, apperr.ErrCupomNotFound, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservarCupomAindaForaDaVigencia(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, 2), hoje.AddDate(0, 0, 10), 99))
	mock.ExpectRollback()

	_, err := svc.Reservar("AAAAAAAAAAA1", 1)
	assert.Equal(t, apperr.ErrCupomForaVigencia, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservarCupomExpirado(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -10), hoje.AddDate(0, 0, -1), 99))
	mock.ExpectRollback()

	_, err := svc.Reservar("AAAAAAAAAAA1", 1)
	assert.Equal(t, apperr.ErrCupomExpirado, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservarNoUltimoDiaDaVigencia(t *testing.T) {
	// O banco devolve dta_termino como meia-noite UTC; reservar no próprio
	// dia do término ainda é vigência válida, mesmo com o servidor em um
	// fuso atrás de UTC
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -5), hoje, 99))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows([]string{"id_cupom_associado"}).AddRow(7))
	mock.ExpectCommit()

	reserva, err := svc.Reservar("AAAAAAAAAAA1", 1)
	require.NoError(t, err)
	assert.Equal(t, uint(7), reserva.ID)
	assert.Equal(t, "AAAAAAAAAAA1", reserva.NumCupom)
	assert.Nil(t, reserva.DataUso)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservarCupomJaReservado(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -1), hoje.AddDate(0, 0, 10), 99))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Reservar("AAAAAAAAAAA1", 1)
	assert.Equal(t, apperr.ErrCupomJaReservado, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReservarCorridaResolvidaPeloIndiceUnico(t *testing.T) {
	// Duas reservas simultâneas passam pela contagem, mas o índice único
	// derruba a segunda inserção; o perdedor recebe o mesmo desfecho de
	// cupom já reservado
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -1), hoje.AddDate(0, 0, 10), 99))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "cupom_associado"`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	_, err := svc.Reservar("AAAAAAAAAAA1", 1)
	assert.Equal(t, apperr.ErrCupomJaReservado, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoverReservaInexistente(t *testing.T) {
	svc, mock := novoServicoReserva(t)

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva))

	err := svc.Remover(7, 1)
	assert.Equal(t, apperr.ErrReservaNotFound, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoverReservaDeOutroAssociado(t *testing.T) {
	svc, mock := novoServicoReserva(t)

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(2), hojeEmUTC(), nil))

	err := svc.Remover(7, 1)
	assert.Equal(t, apperr.ErrReservaNaoPertence, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoverReservaJaUtilizada(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(1), hoje.AddDate(0, 0, -2), hoje.AddDate(0, 0, -1)))

	err := svc.Remover(7, 1)
	assert.Equal(t, apperr.ErrReservaJaUtilizada, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoverReservaComSucesso(t *testing.T) {
	svc, mock := novoServicoReserva(t)

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(1), hojeEmUTC(), nil))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "cupom_associado"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, svc.Remover(7, 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUtilizarReservaDeCupomDeOutroComercio(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(1), hoje, nil))
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -1), hoje.AddDate(0, 0, 10), 999))

	_, err := svc.Utilizar(7, 111)
	assert.Equal(t, apperr.ErrCupomNaoPertence, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUtilizarReservaJaUtilizada(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(1), hoje.AddDate(0, 0, -2), hoje.AddDate(0, 0, -1)))
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -5), hoje.AddDate(0, 0, 10), 999))

	_, err := svc.Utilizar(7, 999)
	assert.Equal(t, apperr.ErrReservaJaUtilizada, apperr.CodeOf(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUtilizarReservaComSucesso(t *testing.T) {
	svc, mock := novoServicoReserva(t)
	hoje := hojeEmUTC()

	mock.ExpectQuery(`SELECT .+ FROM "cupom_associado"`).
		WillReturnRows(sqlmock.NewRows(colunasReserva).
			AddRow(7, "AAAAAAAAAAA1", uint64(1), hoje.AddDate(0, 0, -1), nil))
	mock.ExpectQuery(`SELECT .+ FROM "cupom"`).
		WillReturnRows(linhaCupom("AAAAAAAAAAA1", hoje.AddDate(0, 0, -5), hoje.AddDate(0, 0, 10), 999))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "cupom_associado" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	reserva, err := svc.Utilizar(7, 999)
	require.NoError(t, err)
	require.NotNil(t, reserva.DataUso)
	assert.True(t, reserva.Utilizada())
	require.NoError(t, mock.ExpectationsWereMet())
}
