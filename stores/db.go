// Package stores holds the accessors for the catalog, review and logging
// stores.
package stores

import (
	"fmt"

	"gorm.io/gorm"
)

// Opener opens a new connection to a relational store
type Opener func() (*gorm.DB, error)

// withDB opens a connection, runs fn against it and closes the connection
// whatever fn returns
func withDB(open Opener, fn func(db *gorm.DB) error) error {
	db, err := open()
	if err != nil {
		return fmt.Errorf("open connection: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("access connection: %w", err)
	}
	defer sqlDB.Close()

	return fn(db)
}
