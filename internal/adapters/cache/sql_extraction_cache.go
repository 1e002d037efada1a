package cache

import (
	"context"
	"coordinate-converter-service/internal/platform/obs"
	"coordinate-converter-service/internal/ports"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// SQLExtractionCache is a SQL-backed cache mapping free-text queries
// to the field set the text-understanding collaborator returned for
// them. Keys are whitespace-normalized query strings.
type SQLExtractionCache struct {
	DB *sql.DB
}

func NewSQLExtractionCache(db *sql.DB) *SQLExtractionCache {
	return &SQLExtractionCache{DB: db}
}

// Fetch the cached field set for one query.
func (s *SQLExtractionCache) Get(ctx context.Context, query string) (_ ports.ExtractedFields, _ bool, err error) {
	defer obs.Time(ctx, "extraction.cache.Get")(&err)

	if s.DB == nil {
		return ports.ExtractedFields{}, false, errors.New("extraction cache: db is nil")
	}

	if strings.TrimSpace(query) == "" {
		return ports.ExtractedFields{}, false, nil
	}

	q := `
	SELECT x_coord, y_coord, source_format, target_format, target_cs_name, zone
    FROM extraction_cache
    WHERE query = $1;
	`

	var f ports.ExtractedFields
	row := s.DB.QueryRowContext(ctx, q, query)
	if err := row.Scan(&f.XCoord, &f.YCoord, &f.SourceFormat, &f.TargetFormat, &f.TargetCSName, &f.Zone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.ExtractedFields{}, false, nil
		}
		return ports.ExtractedFields{}, false, fmt.Errorf("get extraction cache: query extraction_cache table: %w", err)
	}

	return f, true, nil
}

// Store the field set returned for one query.
func (s *SQLExtractionCache) Put(ctx context.Context, query string, fields ports.ExtractedFields) error {
	if s.DB == nil {
		return errors.New("extraction cache: db is nil")
	}

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("insert extraction cache: empty query key")
	}

	q := `
	INSERT INTO extraction_cache (query, x_coord, y_coord, source_format, target_format, target_cs_name, zone)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (query) DO UPDATE
	SET x_coord = EXCLUDED.x_coord,
		y_coord = EXCLUDED.y_coord,
		source_format = EXCLUDED.source_format,
		target_format = EXCLUDED.target_format,
		target_cs_name = EXCLUDED.target_cs_name,
		zone = EXCLUDED.zone;
	`

	if _, err := s.DB.ExecContext(ctx, q,
		query, fields.XCoord, fields.YCoord, fields.SourceFormat, fields.TargetFormat, fields.TargetCSName, fields.Zone,
	); err != nil {
		return fmt.Errorf("insert extraction cache query=%q: %w", query, err)
	}

	return nil
}
