package riskmodel

import (
	"errors"
	"testing"
	"time"

	"CreditForge/pkg/table"
)

func portfolioTable(segs []string, ead, lgd, pd []float64) *table.Table {
	t := table.New(ColAccountID, ColSegment, ColEAD, ColLGD, ColPDEstimate)
	n := len(segs)
	ids := make([]any, n)
	segCol := make([]any, n)
	eadCol := make([]any, n)
	lgdCol := make([]any, n)
	pdCol := make([]any, n)
	for i := 0; i < n; i++ {
		ids[i] = "X"
		segCol[i] = segs[i]
		eadCol[i] = ead[i]
		lgdCol[i] = lgd[i]
		pdCol[i] = pd[i]
	}
	t.SetColumn(ColAccountID, ids)
	t.SetColumn(ColSegment, segCol)
	t.SetColumn(ColEAD, eadCol)
	t.SetColumn(ColLGD, lgdCol)
	t.SetColumn(ColPDEstimate, pdCol)
	return t
}

func TestScoreMissingColumns(t *testing.T) {
	m := New()
	bad := table.New(ColAccountID, ColSegment)
	bad.SetColumn(ColAccountID, []any{"A"})
	bad.SetColumn(ColSegment, []any{"Prime"})

	_, err := m.Score(bad)
	var mce *table.MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	want := []string{ColEAD, ColLGD, ColPDEstimate}
	if len(mce.Columns) != len(want) {
		t.Fatalf("missing %v, want %v", mce.Columns, want)
	}
	for i := range want {
		if mce.Columns[i] != want[i] {
			t.Fatalf("missing %v, want %v", mce.Columns, want)
		}
	}
}

func TestScoreUnknownSegmentUsesUnitScaler(t *testing.T) {
	m := New()
	p := portfolioTable([]string{"Exotic"}, []float64{1000}, []float64{0.5}, []float64{0.02})
	scored, err := m.Score(p)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if got := scored.Floats(ColPDCalibrated)[0]; got != 0.02 {
		t.Fatalf("pd_calibrated %v, want 0.02", got)
	}
	if got := scored.Floats(ColExpectedLoss)[0]; got != 1000*0.5*0.02 {
		t.Fatalf("expected_loss %v", got)
	}
}

func TestScoreAppliesScalerAndClamps(t *testing.T) {
	m := New()
	// Push the Prime scaler to 4x, then score a PD that clamps at the cap.
	hist := historyTable(
		[]string{"Prime", "Prime"},
		[]float64{0.1, 0.1},
		[]bool{true, true},
	)
	if _, err := m.Calibrate(hist); err != nil {
		t.Fatalf("calibrate: %v", err)
	}

	p := portfolioTable(
		[]string{"Prime", "Prime"},
		[]float64{100, 100},
		[]float64{0.5, 0.5},
		[]float64{0.01, 0.2},
	)
	scored, err := m.Score(p)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	pdCal := scored.Floats(ColPDCalibrated)
	if pdCal[0] != 0.04 {
		t.Fatalf("pd_calibrated %v, want 0.04", pdCal[0])
	}
	if pdCal[1] != m.Config().PDCap {
		t.Fatalf("pd_calibrated %v, want cap %v", pdCal[1], m.Config().PDCap)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	m := New()
	p := portfolioTable([]string{"Prime"}, []float64{100}, []float64{0.4}, []float64{0.01})
	if _, err := m.Score(p); err != nil {
		t.Fatalf("score: %v", err)
	}
	if p.Has(ColPDCalibrated) || p.Has(ColExpectedLoss) {
		t.Fatalf("input table mutated by Score")
	}
}

func TestScoreGeneratedSnapshot(t *testing.T) {
	m := New(WithSeed(42))
	snap := m.GenerateBaselineSnapshot(100, time.Time{})
	scored, err := m.Score(snap)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	cfg := m.Config()
	pdCal := scored.Floats(ColPDCalibrated)
	for i, v := range pdCal {
		if v < cfg.PDFloor || v > cfg.PDCap {
			t.Fatalf("row %d: pd_calibrated %v outside bounds", i, v)
		}
	}
	// Uncalibrated model: pd_calibrated must equal pd_estimate.
	pd := scored.Floats(ColPDEstimate)
	for i := range pd {
		if pdCal[i] != clamp(pd[i], cfg.PDFloor, cfg.PDCap) {
			t.Fatalf("row %d: pd_calibrated %v != pd_estimate %v with unit scalers", i, pdCal[i], pd[i])
		}
	}
}
