package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/aussiebroadwan/iresident/internal/resident/store"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Compile-time contract assertions.
var (
	_ store.Store = (*Store)(nil)
	_ store.Tx    = (*txStore)(nil)
)

const (
	dateLayout      = time.DateOnly
	timestampLayout = time.RFC3339Nano
)

// querier is satisfied by both *sql.DB and *sql.Tx so every repo can run
// inside or outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens a SQLite database. Foreign keys are switched on for every
// pooled connection through the _pragma DSN parameter. In-memory databases
// are private to a connection, so the pool is pinned to a single one.
func NewStore(dsn string) (*Store, error) {
	dsn = withForeignKeys(dsn)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // no-op after a successful commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) Roles() store.Roles             { return &rolesRepo{q: s.db} }
func (s *Store) Users() store.Users             { return &usersRepo{q: s.db} }
func (s *Store) Visitors() store.Visitors       { return &visitorsRepo{q: s.db} }
func (s *Store) Vehicles() store.Vehicles       { return &vehiclesRepo{q: s.db} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{q: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapWriteErr turns SQLite foreign key violations into store.ErrReference.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var se *moderncsqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	switch {
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return store.ErrReference
	case se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(se.Error(), "FOREIGN KEY"):
		// primary result code only; extended codes disabled on this connection
		return store.ErrReference
	}
	return err
}

// requireAffected maps a zero-row UPDATE/DELETE to store.ErrNotFound.
func requireAffected(res sql.Result, err error) error {
	if err != nil {
		return mapWriteErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullInt64Ptr(n sql.NullInt64) *int64 {
	if n.Valid {
		val := n.Int64
		return &val
	}
	return nil
}

func mapOptionalInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func mapDateNull(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: t.Format(dateLayout), Valid: true}
}

func mapNullDate(ns sql.NullString) (time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, ns.String)
}

func mapTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(timestampLayout, s)
}
