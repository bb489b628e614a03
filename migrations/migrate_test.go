package migrations_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alemeds/rifa-multivendedor/internal/testutil"
	"github.com/alemeds/rifa-multivendedor/migrations"
)

func TestApply(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	require.NoError(t, migrations.Apply(ctx, pool))

	// Idempotent: a second run applies nothing and fails nothing.
	require.NoError(t, migrations.Apply(ctx, pool))

	for _, table := range []string{"sales", "reservations", "schema_migrations"} {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}

	// The ledger tables deliberately carry no unique constraint on the
	// records' natural keys.
	var uniques int
	err := pool.QueryRow(ctx, `
SELECT COUNT(*)
FROM information_schema.table_constraints
WHERE table_name IN ('sales', 'reservations')
  AND constraint_type = 'UNIQUE'`).Scan(&uniques)
	require.NoError(t, err)
	assert.Zero(t, uniques)
}
