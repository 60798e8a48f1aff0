package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/pshophq/pshop/internal/pshop/store"
)

type txStore struct {
	tx *sqlx.Tx
}

func newTx(tx *sqlx.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // caller commits/rollbacks; outer DB stays open

// Ping is a no-op for transactions; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx starts

func (t *txStore) Users() store.Users       { return &usersRepo{db: t.tx} }
func (t *txStore) Sessions() store.Sessions { return &sessionsRepo{db: t.tx} }
func (t *txStore) Products() store.Products { return &productsRepo{db: t.tx} }
func (t *txStore) Sales() store.Sales       { return &salesRepo{db: t.tx} }
func (t *txStore) Expenses() store.Expenses { return &expensesRepo{db: t.tx} }
func (t *txStore) Themes() store.Themes     { return &themesRepo{db: t.tx} }
