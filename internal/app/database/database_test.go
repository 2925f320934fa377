package database

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const migrationPath = "../../../migrations/001_create_tables.sql"

// Matches a full FK clause; the cascade suffix is optional so a bare
// REFERENCES still matches and fails the assertion below.
var fkClause = regexp.MustCompile(`REFERENCES\s+\w+\s*\([^)]*\)(?:\s+ON DELETE CASCADE)?`)

// Deletion happens only through FK cascade, so deleting a channel must
// take down its posts and, transitively, their comments, votes and
// subscriptions. That only holds if every FK in the schema cascades.
func TestMigrationForeignKeysCascade(t *testing.T) {
	raw, err := os.ReadFile(filepath.FromSlash(migrationPath))
	require.NoError(t, err)

	clauses := fkClause.FindAllString(string(raw), -1)
	require.NotEmpty(t, clauses)
	for _, clause := range clauses {
		assert.Contains(t, clause, "ON DELETE CASCADE", clause)
	}
}

// The channel -> post -> comment chain is what makes channel deletion
// transitive; pin each link explicitly.
func TestMigrationCascadeChain(t *testing.T) {
	raw, err := os.ReadFile(filepath.FromSlash(migrationPath))
	require.NoError(t, err)
	schema := string(raw)

	assert.Contains(t, schema, "REFERENCES channels (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "REFERENCES posts (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "REFERENCES comments (id) ON DELETE CASCADE")
}
