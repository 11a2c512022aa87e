package sqlt_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Konsultn-Engineering/sqlt"
	_ "github.com/Konsultn-Engineering/sqlt/providers/sqlite"
	"github.com/Konsultn-Engineering/sqlt/sqlerr"
	"github.com/Konsultn-Engineering/sqlt/template"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct {
	ID       int64  `db:"id"`
	Account  string `db:"account"`
	Password string `db:"password"`
	Email    string `db:"email"`
}

func setup(t *testing.T) (*template.Template, context.Context) {
	t.Helper()
	ctx := context.Background()

	tpl, conn, err := sqlt.Connect(ctx, "sqlite", sqlt.Config{},
		template.WithLogger(zerolog.New(zerolog.NewTestWriter(t))))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	_, err = tpl.Update(ctx, `CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account TEXT NOT NULL,
		password TEXT NOT NULL,
		email TEXT NOT NULL
	)`)
	require.NoError(t, err)

	return tpl, ctx
}

func TestEndToEnd_InsertFetchDelete(t *testing.T) {
	tpl, ctx := setup(t)
	mapper := template.StructMapper[user]()

	n, err := tpl.Update(ctx,
		`INSERT INTO users (account, password, email) VALUES (?, ?, ?)`,
		"alice", "pw", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, found, err := template.QueryOne(ctx, tpl,
		`SELECT id, account, password, email FROM users WHERE account = ?`,
		mapper, "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "alice", got.Account)
	assert.Equal(t, "pw", got.Password)
	assert.Equal(t, "a@x.com", got.Email)

	all, err := template.QueryMany(ctx, tpl,
		`SELECT id, account, password, email FROM users`, mapper)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, got, all[0])

	deleted, err := tpl.Update(ctx, `DELETE FROM users`)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	empty, err := template.QueryMany(ctx, tpl,
		`SELECT id, account, password, email FROM users`, mapper)
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Len(t, empty, 0)
}

func TestEndToEnd_FetchOneAbsence(t *testing.T) {
	tpl, ctx := setup(t)

	_, found, err := template.QueryOne(ctx, tpl,
		`SELECT account FROM users WHERE account = ?`,
		func(row template.Row) (string, error) {
			var s string
			return s, row.Scan(&s)
		}, "nobody")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEndToEnd_MutateHasNoImplicitDeduplication(t *testing.T) {
	tpl, ctx := setup(t)

	insert := `INSERT INTO users (account, password, email) VALUES (?, ?, ?)`
	for i := 0; i < 2; i++ {
		n, err := tpl.Update(ctx, insert, "alice", "pw", "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	}

	count, found, err := template.QueryOne(ctx, tpl,
		`SELECT COUNT(*) FROM users WHERE account = ?`,
		func(row template.Row) (int64, error) {
			var n int64
			return n, row.Scan(&n)
		}, "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), count)
}

func TestEndToEnd_NilParameterBindsAsNull(t *testing.T) {
	tpl, ctx := setup(t)

	_, err := tpl.Update(ctx, `CREATE TABLE profiles (
		account TEXT NOT NULL,
		nickname TEXT
	)`)
	require.NoError(t, err)

	n, err := tpl.Update(ctx,
		`INSERT INTO profiles (account, nickname) VALUES (?, ?)`,
		"alice", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	nulls, _, err := template.QueryOne(ctx, tpl,
		`SELECT COUNT(*) FROM profiles WHERE nickname IS NULL`,
		func(row template.Row) (int64, error) {
			var n int64
			return n, row.Scan(&n)
		})
	require.NoError(t, err)
	assert.Equal(t, int64(1), nulls)

	nickname, found, err := template.QueryOne(ctx, tpl,
		`SELECT nickname FROM profiles WHERE account = ?`,
		func(row template.Row) (*string, error) {
			var s *string
			return s, row.Scan(&s)
		}, "alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Nil(t, nickname)
}

func TestEndToEnd_ParameterArityMismatchFails(t *testing.T) {
	tpl, ctx := setup(t)

	_, err := tpl.Update(ctx,
		`INSERT INTO users (account, password, email) VALUES (?, ?, ?)`,
		"alice", "pw")
	require.Error(t, err)

	var dataErr *sqlerr.Error
	assert.True(t, errors.As(err, &dataErr))
}

func TestEndToEnd_DriverErrorSurfacesAsEnvelope(t *testing.T) {
	tpl, ctx := setup(t)

	_, err := tpl.Update(ctx, `INSERT INTO missing_table (x) VALUES (?)`, 1)
	require.Error(t, err)

	var dataErr *sqlerr.Error
	require.True(t, errors.As(err, &dataErr))
	assert.Equal(t, `INSERT INTO missing_table (x) VALUES (?)`, dataErr.Query)
	assert.Error(t, dataErr.Cause())
}

func TestEndToEnd_ConcurrentCallers(t *testing.T) {
	tpl, ctx := setup(t)

	const workers = 4
	const perWorker = 10

	var wg sync.WaitGroup
	errs := make(chan error, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, err := tpl.Update(ctx,
					`INSERT INTO users (account, password, email) VALUES (?, ?, ?)`,
					"alice", "pw", "a@x.com")
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	total, _, err := template.QueryOne(ctx, tpl, `SELECT COUNT(*) FROM users`,
		func(row template.Row) (int64, error) {
			var n int64
			return n, row.Scan(&n)
		})
	require.NoError(t, err)
	assert.Equal(t, int64(workers*perWorker), total)
}
