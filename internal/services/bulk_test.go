package services

import (
	"context"
	"coordinate-converter-service/internal/adapters/transform"
	"coordinate-converter-service/internal/domain"
	"strings"
	"testing"
)

func TestConvertCSV(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})

	input := strings.NewReader("name,x,y\n" +
		"alun-alun,107.619044,-6.917464\n" +
		"stasiun,107.602,-6.914\n")

	conv := BulkConversion{
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:32648",
	}

	out, err := ConvertCSV(context.Background(), input, conv, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 3 {
		t.Fatalf("expected 3 output rows, got %d", len(out))
	}
	wantHeader := []string{"name", "x", "y", "x_converted", "y_converted", "error"}
	for i, col := range wantHeader {
		if out[0][i] != col {
			t.Fatalf("header = %v, want %v", out[0], wantHeader)
		}
	}
	if out[1][3] != "784818.170000" || out[1][4] != "9234443.180000" {
		t.Fatalf("row 1 converted pair = %q, %q", out[1][3], out[1][4])
	}
	if out[1][5] != "" {
		t.Fatalf("row 1 error = %q", out[1][5])
	}
	if out[2][0] != "stasiun" {
		t.Fatalf("row order not preserved: %v", out[2])
	}
}

func TestConvertCSVRowFailuresAreIndependent(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})

	input := strings.NewReader("x,y\n" +
		"107.619044,-6.917464\n" +
		"not-a-number,-6.914\n" +
		"107.610,-6.920\n")

	conv := BulkConversion{
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:32648",
	}

	out, err := ConvertCSV(context.Background(), input, conv, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out[1][4] != "" {
		t.Fatalf("row 1 error = %q", out[1][4])
	}
	if out[2][4] == "" {
		t.Fatal("row 2 should carry an error")
	}
	if out[2][2] != "" || out[2][3] != "" {
		t.Fatalf("row 2 has partial output: %q, %q", out[2][2], out[2][3])
	}
	if out[3][2] != "784818.170000" {
		t.Fatalf("row 3 converted x = %q", out[3][2])
	}
}

func TestConvertCSVMissingColumns(t *testing.T) {
	provider := transform.NewMockTransformProvider(nil)

	input := strings.NewReader("lon,lat\n107.6,-6.9\n")
	conv := BulkConversion{
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationDD,
		TargetCRS:      "EPSG:4326",
	}

	if _, err := ConvertCSV(context.Background(), input, conv, provider); err == nil {
		t.Fatal("expected an error for a file without x and y columns")
	}
}

func TestConvertCSVManyRows(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32649", X: 111111.11, Y: 9222222.22},
	})

	var sb strings.Builder
	sb.WriteString("x,y\n")
	for i := 0; i < 50; i++ {
		sb.WriteString("110.1,-7.2\n")
	}

	conv := BulkConversion{
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:32649",
	}

	out, err := ConvertCSV(context.Background(), strings.NewReader(sb.String()), conv, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 51 {
		t.Fatalf("expected 51 rows, got %d", len(out))
	}
	for i := 1; i < len(out); i++ {
		if out[i][2] != "111111.110000" {
			t.Fatalf("row %d converted x = %q", i, out[i][2])
		}
	}
	if provider.Calls() != 50 {
		t.Fatalf("transform called %d times, want 50", provider.Calls())
	}
}
