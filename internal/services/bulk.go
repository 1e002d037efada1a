package services

import (
	"context"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"
)

// BulkConversion describes the conversion applied to every row of an
// uploaded file.
type BulkConversion struct {
	SourceNotation domain.Notation
	SourceCRS      string
	TargetNotation domain.Notation
	TargetCRS      string
}

const bulkWorkers = 5

// ConvertCSV applies the same conversion to every row of a CSV file
// carrying x and y columns. Rows are converted concurrently and
// independently: a bad row gets its error recorded in place while the
// rest of the file proceeds.
//
// The output keeps the original columns and appends x_converted,
// y_converted and error.
func ConvertCSV(
	ctx context.Context,
	r io.Reader,
	conv BulkConversion,
	provider ports.TransformProvider,
) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	xi, yi := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			xi = i
		case "y":
			yi = i
		}
	}
	if xi < 0 || yi < 0 {
		return nil, fmt.Errorf("csv must carry x and y columns, got %v", header)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv rows: %w", err)
	}

	type rowResult struct {
		x, y, errText string
	}
	results := make([]rowResult, len(rows))

	// Bounded fan-out; each goroutine owns one slot of the results
	// slice, so no channel is needed to collect them.
	sem := make(chan struct{}, bulkWorkers)
	var wg sync.WaitGroup
	for i := range rows {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			req := domain.ConversionRequest{
				RawX:           rows[i][xi],
				RawY:           rows[i][yi],
				SourceNotation: conv.SourceNotation,
				SourceCRS:      conv.SourceCRS,
				TargetNotation: conv.TargetNotation,
				TargetCRS:      conv.TargetCRS,
			}
			res, err := Convert(ctx, req, provider)
			if err != nil {
				results[i] = rowResult{errText: err.Error()}
				return
			}
			results[i] = rowResult{x: res.FormattedX, y: res.FormattedY}
		}(i)
	}
	wg.Wait()

	out := make([][]string, 0, len(rows)+1)
	outHeader := append([]string{}, header...)
	outHeader = append(outHeader, "x_converted", "y_converted", "error")
	out = append(out, outHeader)
	for i, row := range rows {
		outRow := append([]string{}, row...)
		outRow = append(outRow, results[i].x, results[i].y, results[i].errText)
		out = append(out, outRow)
	}
	return out, nil
}
