package repositories

import (
	"context"
	"coordinate-converter-service/internal/platform/obs"
	"coordinate-converter-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the ConversionHistory port.
type SQLHistoryRepository struct{ DB *sql.DB }

func NewSQLHistoryRepository(db *sql.DB) *SQLHistoryRepository {
	return &SQLHistoryRepository{DB: db}
}

// Append one conversion record. The database assigns created_at.
func (s *SQLHistoryRepository) Append(ctx context.Context, rec ports.ConversionRecord) (err error) {
	defer obs.Time(ctx, "history.Append")(&err)

	if s.DB == nil {
		return errors.New("history repository: DB is nil")
	}

	query := `
	INSERT INTO conversions (
		user_query,
		original_coords,
		converted_coords,
		source_crs,
		target_crs
	)
	VALUES ($1, $2, $3, $4, $5);
	`

	if _, err := s.DB.ExecContext(ctx, query,
		rec.UserQuery, rec.OriginalCoords, rec.ConvertedCoords, rec.SourceCRS, rec.TargetCRS,
	); err != nil {
		return fmt.Errorf("append conversion: insert conversions row: %w", err)
	}

	return nil
}
