package services

import (
	"context"
	"coordinate-converter-service/internal/adapters/transform"
	"coordinate-converter-service/internal/domain"
	"errors"
	"sync"
	"testing"
)

func TestConvertDecimalToProjected(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})

	req := domain.ConversionRequest{
		RawX:           "107.619044",
		RawY:           "-6.917464",
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:32648",
	}

	res, err := Convert(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FormattedX != "784818.170000" {
		t.Fatalf("formatted x = %q", res.FormattedX)
	}
	if res.FormattedY != "9234443.180000" {
		t.Fatalf("formatted y = %q", res.FormattedY)
	}
	if res.Notation != domain.NotationProjected {
		t.Fatalf("notation = %q, want projected", res.Notation)
	}
}

func TestConvertDMSInput(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
	})

	req := domain.ConversionRequest{
		RawX:           `107° 37' 8.56" E`,
		RawY:           `6° 55' 29.28" S`,
		SourceNotation: domain.NotationDMS,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:32648",
	}

	res, err := Convert(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FormattedX != "784818.170000" {
		t.Fatalf("formatted x = %q", res.FormattedX)
	}
}

func TestConvertFormatsDMSOutput(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:32648", TargetCRS: "EPSG:4326", X: 107.619044, Y: -6.927464},
	})

	req := domain.ConversionRequest{
		RawX:           "784818.17",
		RawY:           "9234443.18",
		SourceNotation: domain.NotationProjected,
		SourceCRS:      "EPSG:32648",
		TargetNotation: domain.NotationDMS,
		TargetCRS:      "EPSG:4326",
	}

	res, err := Convert(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FormattedX != `107° 37' 8.56" E` {
		t.Fatalf("formatted x = %q", res.FormattedX)
	}
	if res.FormattedY != `6° 55' 38.87" S` {
		t.Fatalf("formatted y = %q", res.FormattedY)
	}
}

func TestConvertRejectsBadDecimal(t *testing.T) {
	provider := transform.NewMockTransformProvider(nil)

	req := domain.ConversionRequest{
		RawX:           "abc",
		RawY:           "-6.9",
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationDD,
		TargetCRS:      "EPSG:4326",
	}

	_, err := Convert(context.Background(), req, provider)
	if !errors.Is(err, domain.ErrNumericParse) {
		t.Fatalf("error = %v, want numeric parse failure", err)
	}
	if provider.Calls() != 0 {
		t.Fatalf("transform called %d times after a parse failure", provider.Calls())
	}
}

func TestConvertRejectsBadDMS(t *testing.T) {
	provider := transform.NewMockTransformProvider(nil)

	req := domain.ConversionRequest{
		RawX:           "utara jauh",
		RawY:           `6° 55' 29.28" S`,
		SourceNotation: domain.NotationDMS,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationDD,
		TargetCRS:      "EPSG:4326",
	}

	_, err := Convert(context.Background(), req, provider)
	if !errors.Is(err, domain.ErrAngleParse) {
		t.Fatalf("error = %v, want angle parse failure", err)
	}
	if provider.Calls() != 0 {
		t.Fatalf("transform called %d times after a parse failure", provider.Calls())
	}
}

func TestConvertUnknownCRSLeavesNoPartialResult(t *testing.T) {
	provider := transform.NewMockTransformProvider(nil)

	req := domain.ConversionRequest{
		RawX:           "107.6",
		RawY:           "-6.9",
		SourceNotation: domain.NotationDD,
		SourceCRS:      "EPSG:4326",
		TargetNotation: domain.NotationProjected,
		TargetCRS:      "EPSG:0000",
	}

	res, err := Convert(context.Background(), req, provider)
	if !errors.Is(err, domain.ErrUnknownCRS) {
		t.Fatalf("error = %v, want unknown crs", err)
	}
	if res != (domain.ConversionResult{}) {
		t.Fatalf("result = %+v, want zero value", res)
	}
}

func TestConvertConcurrentRequestsAreIndependent(t *testing.T) {
	provider := transform.NewMockTransformProvider([]transform.MockTransform{
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32648", X: 784818.17, Y: 9234443.18},
		{SourceCRS: "EPSG:4326", TargetCRS: "EPSG:32649", X: 111111.11, Y: 9222222.22},
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := "EPSG:32648"
			wantX := "784818.170000"
			if i%2 == 1 {
				target = "EPSG:32649"
				wantX = "111111.110000"
			}
			req := domain.ConversionRequest{
				RawX:           "107.619044",
				RawY:           "-6.917464",
				SourceNotation: domain.NotationDD,
				SourceCRS:      "EPSG:4326",
				TargetNotation: domain.NotationProjected,
				TargetCRS:      target,
			}
			res, err := Convert(context.Background(), req, provider)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if res.FormattedX != wantX {
				t.Errorf("formatted x = %q, want %q", res.FormattedX, wantX)
			}
		}(i)
	}
	wg.Wait()
}
