// Package database provides the shared database client helper for tests.
package database

import (
	"testing"

	"github.com/johnazariah/aura-sub009/pkg/database"
	"github.com/johnazariah/aura-sub009/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a shared testcontainer.
// Each test gets its own schema; cleanup is handled by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
