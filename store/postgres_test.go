package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dizzycode.xyz/logstrategy/strategies"
)

func TestPostgres_Insert(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "logs" (level, message, logged_at) VALUES ($1, $2, $3)`)).
		WithArgs("INFO", "App started", fixedTime).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	p := NewPostgres(mock)
	rec := strategies.Record{Level: "INFO", Message: "App started", Timestamp: fixedTime}
	require.NoError(t, p.Insert(context.Background(), "logs", rec))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Insert_SchemaQualified(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "audit"."app_logs"`)).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, NewPostgres(mock).Insert(context.Background(), "audit.app_logs", strategies.Record{Timestamp: fixedTime}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Insert_Failure(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	cause := errors.New("connection refused")
	mock.ExpectExec("INSERT INTO").WillReturnError(cause)

	err = NewPostgres(mock).Insert(context.Background(), "logs", strategies.Record{Timestamp: fixedTime})
	assert.ErrorIs(t, err, cause)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Insert_NoRowsAffected(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec("INSERT INTO").WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err = NewPostgres(mock).Insert(context.Background(), "logs", strategies.Record{Timestamp: fixedTime})
	assert.ErrorContains(t, err, "expected 1 row affected")
}

func TestPostgres_EnsureTable(t *testing.T) {
	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(context.Background())

	mock.ExpectExec(regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS "logs"`)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, NewPostgres(mock).EnsureTable(context.Background(), "logs"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
