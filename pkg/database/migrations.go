package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. Must match the constraints in the init migration.
//
// The test harness applies this after Ent auto-migration too, so integration
// tests run against the same constraints as production.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one live allocation per execution. The assign transaction's
	// runner-row lock already serializes writers; this constraint turns any
	// future bug into a unique violation instead of a double allocation.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS resourceallocation_execution_id_allocated
		ON resource_allocations (execution_id)
		WHERE state = 'allocated'`)
	if err != nil {
		return fmt.Errorf("failed to create live allocation index: %w", err)
	}

	return nil
}
