package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema: the append-only conversion history
// and the extraction cache.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createConversionsQuery := `
	CREATE TABLE IF NOT EXISTS conversions (
		id BIGSERIAL PRIMARY KEY,
		user_query TEXT NOT NULL,
		original_coords TEXT NOT NULL,
		converted_coords TEXT NOT NULL,
		source_crs TEXT NOT NULL,
		target_crs TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createExtractionCacheQuery := `
	CREATE TABLE IF NOT EXISTS extraction_cache (
        query TEXT PRIMARY KEY,
        x_coord TEXT NOT NULL,
        y_coord TEXT NOT NULL,
        source_format TEXT NOT NULL,
        target_format TEXT NOT NULL,
        target_cs_name TEXT NOT NULL,
        zone TEXT NOT NULL DEFAULT '',
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_conversions_created_at
    ON conversions(created_at);
	`

	statements := []string{
		createConversionsQuery,
		createExtractionCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
