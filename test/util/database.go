// Package util provides the PostgreSQL harness shared by database-backed
// tests.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/johnazariah/aura-sub009/ent"
)

var (
	sharedConnStr string
	containerOnce sync.Once
	containerErr  error
)

// SetupTestDatabase hands the test its own PostgreSQL schema with the Aura
// tables created, on a database shared across the package. CI points at an
// external server through CI_DATABASE_URL; local runs share one
// testcontainer. The schema is dropped when the test finishes.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	ctx := context.Background()

	connStr := baseConnString(t)
	schema := schemaName(t)

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, "CREATE SCHEMA "+schema)
	require.NoError(t, err)
	_ = db.Close()

	// search_path rides in the connection string so every pooled connection
	// lands in the test schema.
	db, err = stdsql.Open("pgx", withSearchPath(connStr, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx))

	t.Cleanup(func() {
		if _, err := db.ExecContext(context.Background(),
			"DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("drop schema %s: %v", schema, err)
		}
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// baseConnString returns the shared database's connection string, starting
// the local container on first use.
func baseConnString(t *testing.T) string {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	containerOnce.Do(func() {
		ctx := context.Background()
		t.Log("Starting shared PostgreSQL testcontainer")

		pg, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("aura_test"),
			postgres.WithUsername("aura"),
			postgres.WithPassword("aura"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			containerErr = fmt.Errorf("start postgres container: %w", err)
			return
		}

		sharedConnStr, err = pg.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			containerErr = fmt.Errorf("container connection string: %w", err)
		}
	})

	require.NoError(t, containerErr)
	return sharedConnStr
}

// schemaName derives a unique, identifier-safe schema name from the test.
func schemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))

	// Stay well under PostgreSQL's 63-char identifier limit.
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("schema name suffix: %v", err)
	}
	return fmt.Sprintf("aura_%s_%s", name, hex.EncodeToString(suffix))
}

func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
