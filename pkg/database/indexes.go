package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes
// that ent cannot express in schema definitions. These must match the
// constraints in migrations/000001_init.up.sql; tests that migrate via
// ent's Schema.Create call this to get the same guarantees.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One ACTIVE lease per (intent, scope).
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_leases_active_scope
		ON leases (intent_id, scope)
		WHERE status = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create active lease index: %w", err)
	}

	// Idempotency keys are unique where present.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_intents_idempotency_key
		ON intents (idempotency_key)
		WHERE idempotency_key IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create idempotency key index: %w", err)
	}

	return nil
}
