package postgres

import (
	"errors"

	"github.com/aussiebroadwan/iresident/internal/resident/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/stdlib"
)

// ApplyMigrations runs the embedded migrations through a database/sql view
// of the pool. The migrate driver pins one pool connection until it is
// closed, so every path out of here closes it.
func (s *Store) ApplyMigrations() (err error) {
	db := stdlib.OpenDBFromPool(s.pool)

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		_ = db.Close()
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		_ = driver.Close()
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()
		return err
	}
	defer func() {
		srcErr, dbErr := instance.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
