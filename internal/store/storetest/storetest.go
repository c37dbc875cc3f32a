// Package storetest provides an in-memory store for tests of the packages built on it
package storetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/proptoken/proptoken-backend/internal/store"
)

// New returns a migrated in-memory SQLite store closed when t finishes
func New(t *testing.T) store.Store {
	t.Helper()

	db, err := store.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return store.NewStore(db)
}
