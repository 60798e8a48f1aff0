package sqlite

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/pshophq/pshop/internal/pshop/store/drivers/sqlite/migrations"
)

// ApplyMigrations applies any pending database migrations using the embedded
// migration files compiled into the binary. Migrations are versioned and run
// once at startup, replacing any ad hoc per-connection schema patching.
func (s *Store) ApplyMigrations() error {
	driver, err := sqlite.WithInstance(s.db.DB, &sqlite.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", src, "", driver)
	if err != nil {
		return err
	}

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
