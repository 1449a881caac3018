package riskmodel

import (
	"errors"
	"testing"
	"time"

	"CreditForge/pkg/table"
)

func historyTable(segs []string, pd []float64, flags []bool) *table.Table {
	t := table.New(ColSegment, ColPDEstimate, ColDefaultFlag)
	segCol := make([]any, len(segs))
	pdCol := make([]any, len(segs))
	flagCol := make([]any, len(segs))
	for i := range segs {
		segCol[i] = segs[i]
		pdCol[i] = pd[i]
		flagCol[i] = flags[i]
	}
	t.SetColumn(ColSegment, segCol)
	t.SetColumn(ColPDEstimate, pdCol)
	t.SetColumn(ColDefaultFlag, flagCol)
	return t
}

func TestCalibrateMissingColumns(t *testing.T) {
	m := New()
	bad := table.New(ColSegment)
	bad.SetColumn(ColSegment, []any{"Prime"})

	_, err := m.Calibrate(bad)
	var mce *table.MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if len(mce.Columns) != 2 || mce.Columns[0] != ColDefaultFlag || mce.Columns[1] != ColPDEstimate {
		t.Fatalf("unexpected missing columns %v", mce.Columns)
	}
}

func TestCalibratePerfectPrediction(t *testing.T) {
	m := New()
	hist := historyTable(
		[]string{"Prime", "Prime", "Prime", "Prime"},
		[]float64{0.5, 0.5, 0.5, 0.5},
		[]bool{true, false, true, false},
	)
	summary, err := m.Calibrate(hist)
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got := summary.Floats(ColPDScaler)[0]; got != 1.0 {
		t.Fatalf("scaler %v, want 1.0", got)
	}
	if m.Scalers()["Prime"] != 1.0 {
		t.Fatalf("state scaler not 1.0")
	}
}

func TestCalibrateScalerClamp(t *testing.T) {
	m := New()
	// Observed 1.0 vs expected 0.1 would give 10x; clamped to 4.
	high := historyTable(
		[]string{"Prime", "Prime"},
		[]float64{0.1, 0.1},
		[]bool{true, true},
	)
	if _, err := m.Calibrate(high); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got := m.Scalers()["Prime"]; got != 4.0 {
		t.Fatalf("scaler %v, want 4.0", got)
	}

	// No observed defaults gives ratio 0; clamped to 0.25.
	low := historyTable(
		[]string{"Subprime", "Subprime"},
		[]float64{0.2, 0.2},
		[]bool{false, false},
	)
	if _, err := m.Calibrate(low); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got := m.Scalers()["Subprime"]; got != 0.25 {
		t.Fatalf("scaler %v, want 0.25", got)
	}
}

func TestCalibrateZeroExpectedPD(t *testing.T) {
	m := New()
	hist := historyTable(
		[]string{"Prime", "Prime"},
		[]float64{0, 0},
		[]bool{false, true},
	)
	if _, err := m.Calibrate(hist); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got := m.Scalers()["Prime"]; got != 1.0 {
		t.Fatalf("scaler %v, want 1.0 when expected PD is zero", got)
	}
}

func TestCalibrateRetainsUnseenSegments(t *testing.T) {
	m := New()
	first := historyTable(
		[]string{"Subprime", "Subprime"},
		[]float64{0.1, 0.1},
		[]bool{true, true},
	)
	if _, err := m.Calibrate(first); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	before := m.Scalers()["Subprime"]

	second := historyTable(
		[]string{"Prime", "Prime", "Prime", "Prime"},
		[]float64{0.5, 0.5, 0.5, 0.5},
		[]bool{true, true, false, false},
	)
	if _, err := m.Calibrate(second); err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got := m.Scalers()["Subprime"]; got != before {
		t.Fatalf("unseen segment scaler changed: %v -> %v", before, got)
	}
}

func TestCalibrateSummarySorted(t *testing.T) {
	m := New()
	hist := historyTable(
		[]string{"Subprime", "Prime", "Near-Prime", "Prime"},
		[]float64{0.1, 0.01, 0.05, 0.01},
		[]bool{false, false, false, false},
	)
	summary, err := m.Calibrate(hist)
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	got := summary.Strings(ColSegment)
	want := []string{"Near-Prime", "Prime", "Subprime"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("summary order %v, want %v", got, want)
		}
	}
}

func TestCalibrateFromGeneratedPanel(t *testing.T) {
	m := New(WithSeed(42))
	panel := m.GenerateHistoricalPanel(12, 500, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	summary, err := m.Calibrate(panel)
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if summary.Len() != 3 {
		t.Fatalf("expected 3 summary rows, got %d", summary.Len())
	}
	for _, s := range summary.Floats(ColPDScaler) {
		if s < 0.25 || s > 4.0 {
			t.Fatalf("scaler %v outside clamp bounds", s)
		}
	}
}
