// Package db provides database connection and management functionality.
package db

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/Felipaof/My-Fluxo-Finance/config"
)

// NewSQLiteConnection opens a pure Go SQLite database at cfg.URL,
// e.g. "file:fluxo.db?_pragma=foreign_keys(1)" or ":memory:".
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.URL), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite allows one writer at a time
	sqliteCfg := *cfg
	sqliteCfg.MaxOpenConns = 1
	sqliteCfg.MaxIdleConns = 1

	return newDatabase(db, &sqliteCfg)
}
