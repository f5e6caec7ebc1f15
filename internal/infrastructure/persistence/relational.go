package persistence

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewGormDB opens the relational backend. SQLite covers local and embedded
// deployments; Postgres is the production driver.
func NewGormDB(driver, postgresDSN, sqlitePath string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(postgresDSN), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown db driver %q", driver)
	}
}
