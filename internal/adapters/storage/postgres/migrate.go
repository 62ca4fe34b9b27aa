package postgres

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica las migraciones pendientes. Es idempotente: sin cambios devuelve nil.
// Usa su propia conexión porque migrate.Close cierra el *sql.DB que recibe.
func Migrate(dsn string) (version uint, err error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return 0, errors.Wrap(err, "open postgres for migrations")
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = db.Close()
		return 0, errors.Wrap(err, "load migrations")
	}

	driver, err := pgxmigrate.WithInstance(db, &pgxmigrate.Config{})
	if err != nil {
		_ = src.Close()
		_ = db.Close()
		return 0, errors.Wrap(err, "init migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = src.Close()
		_ = driver.Close()
		return 0, errors.Wrap(err, "init migrate")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil && dbErr != nil {
			err = errors.Wrap(dbErr, "close migrate")
		}
		_ = srcErr
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return 0, errors.Wrap(err, "apply migrations")
	}

	version, _, err = m.Version()
	if err != nil {
		return 0, errors.Wrap(err, "read migration version")
	}
	return version, nil
}
