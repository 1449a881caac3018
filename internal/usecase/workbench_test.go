package usecase

import (
	"math"
	"testing"
	"time"

	"CreditForge/internal/domain/models"
	domrepo "CreditForge/internal/domain/repository"
	"CreditForge/internal/service/cache"
	"CreditForge/internal/services/riskmodel"
)

func newTestWorkbench(seed uint64) *Workbench {
	return NewWorkbench(
		riskmodel.New(riskmodel.WithSeed(seed)),
		cache.NewTTLCache(),
		domrepo.NopMetrics{},
		time.Minute,
	)
}

func TestGenerateSnapshotCachesLatest(t *testing.T) {
	w := newTestWorkbench(42)
	snap := w.GenerateSnapshot(10, time.Time{})
	if snap.Len() != 10 {
		t.Fatalf("expected 10 rows, got %d", snap.Len())
	}
	cached, ok := w.LatestSnapshot()
	if !ok {
		t.Fatalf("expected cached snapshot")
	}
	if cached.Len() != 10 {
		t.Fatalf("cached snapshot has %d rows", cached.Len())
	}
}

func TestLatestSnapshotEmpty(t *testing.T) {
	w := newTestWorkbench(42)
	if _, ok := w.LatestSnapshot(); ok {
		t.Fatalf("expected no cached snapshot")
	}
}

func TestCalibrateUpdatesScalers(t *testing.T) {
	w := newTestWorkbench(42)
	panel := w.GeneratePanel(6, 300, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 30)
	entries, scalers, err := w.Calibrate(panel)
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if scalers[e.Segment] != e.PDScaler {
			t.Fatalf("segment %s: state %v != summary %v", e.Segment, scalers[e.Segment], e.PDScaler)
		}
	}
}

func TestRunScenarioSummary(t *testing.T) {
	w := newTestWorkbench(42)
	summary, err := w.RunScenario(6, 200, 500, models.DefaultStressParams())
	if err != nil {
		t.Fatalf("scenario: %v", err)
	}
	if summary.PanelRows != 1200 {
		t.Fatalf("panel rows %d, want 1200", summary.PanelRows)
	}
	if summary.SnapshotRows != 500 {
		t.Fatalf("snapshot rows %d, want 500", summary.SnapshotRows)
	}
	var segTotal float64
	var segAccounts int
	for _, s := range summary.Segments {
		segTotal += s.ExpectedLoss
		segAccounts += s.Accounts
	}
	if segAccounts != 500 {
		t.Fatalf("segment accounts sum %d, want 500", segAccounts)
	}
	if math.Abs(segTotal-summary.ExpectedLoss) > 1e-9 {
		t.Fatalf("segment EL sum %v != total %v", segTotal, summary.ExpectedLoss)
	}
	if summary.ExpectedLossStressed <= summary.ExpectedLoss {
		t.Fatalf("stressed EL %v should exceed base EL %v under default params",
			summary.ExpectedLossStressed, summary.ExpectedLoss)
	}
}
