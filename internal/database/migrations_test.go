package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownMigrationsKeepListings(t *testing.T) {
	downs, err := fs.Glob(migrationsFS, "migrations/*.down.sql")
	require.NoError(t, err)
	require.NotEmpty(t, downs)

	for _, name := range downs {
		body, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)

		for _, stmt := range strings.Split(strings.ToLower(string(body)), ";") {
			if !strings.Contains(stmt, "drop table") {
				continue
			}
			assert.NotContains(t, stmt, "listings", "%s drops a table owned by the platform", name)
		}
		assert.Contains(t, strings.ToLower(string(body)), "drop table if exists geocoding_cache", name)
	}
}
