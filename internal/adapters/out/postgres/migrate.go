package postgres

import (
	"database/sql"
	"fmt"

	"kitchenpos/internal/adapters/out/postgres/menugrouprepo"
	"kitchenpos/internal/adapters/out/postgres/menurepo"
	"kitchenpos/internal/adapters/out/postgres/orderrepo"
	"kitchenpos/internal/adapters/out/postgres/productrepo"
	"kitchenpos/internal/adapters/out/postgres/tablerepo"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Models lists every DTO persisted by kitchenpos, parents before children.
func Models() []any {
	return []any{
		&productrepo.ProductDTO{},
		&menugrouprepo.MenuGroupDTO{},
		&menurepo.MenuDTO{},
		&menurepo.MenuProductDTO{},
		&tablerepo.TableGroupDTO{},
		&tablerepo.OrderTableDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineItemDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// ConnectionString builds a libpq key/value DSN. An empty dbName connects to the
// server's default database.
func ConnectionString(host, port, user, password, dbName, sslMode string) string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s sslmode=%s",
		host, port, user, password, sslMode)
	if dbName != "" {
		dsn += " dbname=" + dbName
	}
	return dsn
}

// EnsureDatabase connects to the server's maintenance database and creates
// dbName unless it already exists.
func EnsureDatabase(dsn, dbName string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open maintenance connection: %w", err)
	}
	defer db.Close()

	var exists bool
	if err = db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName,
	).Scan(&exists); err != nil {
		return fmt.Errorf("check database %q: %w", dbName, err)
	}

	if exists {
		return nil
	}

	if _, err = db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName)); err != nil {
		return fmt.Errorf("create database %q: %w", dbName, err)
	}

	return nil
}
