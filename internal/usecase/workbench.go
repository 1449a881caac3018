package usecase

import (
	"fmt"
	"sync"
	"time"

	"CreditForge/internal/domain/models"
	domrepo "CreditForge/internal/domain/repository"
	domsvc "CreditForge/internal/domain/service"
	"CreditForge/internal/service/cache"
	"CreditForge/internal/services/riskmodel"
	"CreditForge/pkg/table"
)

const latestSnapshotKey = "snapshot:latest"

// Workbench owns one model instance and serializes access to it. The model
// itself is single-threaded (one random stream, one scaler map); the mutex is
// the service-layer ownership boundary around it.
type Workbench struct {
	mu          sync.Mutex
	model       domsvc.RiskModel
	cache       *cache.TTLCache
	metrics     domrepo.Metrics
	snapshotTTL time.Duration
}

func NewWorkbench(model domsvc.RiskModel, c *cache.TTLCache, m domrepo.Metrics, snapshotTTL time.Duration) *Workbench {
	return &Workbench{model: model, cache: c, metrics: m, snapshotTTL: snapshotTTL}
}

// GenerateSnapshot produces a baseline snapshot and caches it as the latest.
func (w *Workbench) GenerateSnapshot(count int, asOf time.Time) *table.Table {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	snap := w.model.GenerateBaselineSnapshot(count, asOf)
	w.metrics.ObserveDuration("generate_snapshot", time.Since(start))
	w.metrics.RecordRowsGenerated("snapshot", snap.Len())

	w.cache.Set(latestSnapshotKey, snap, w.snapshotTTL)
	return snap
}

// LatestSnapshot returns the most recently generated snapshot, if still cached.
func (w *Workbench) LatestSnapshot() (*table.Table, bool) {
	v, ok := w.cache.Get(latestSnapshotKey)
	if !ok {
		return nil, false
	}
	return v.(*table.Table), true
}

// GeneratePanel produces a historical default/loss panel.
func (w *Workbench) GeneratePanel(periods, accountsPerPeriod int, start time.Time, periodLengthDays int) *table.Table {
	w.mu.Lock()
	defer w.mu.Unlock()

	begin := time.Now()
	panel := w.model.GenerateHistoricalPanel(periods, accountsPerPeriod, start, periodLengthDays)
	w.metrics.ObserveDuration("generate_panel", time.Since(begin))
	w.metrics.RecordRowsGenerated("panel", panel.Len())
	return panel
}

// Calibrate updates the model's PD scalers from a historical panel and
// returns the per-segment summary plus the full calibration state.
func (w *Workbench) Calibrate(history *table.Table) ([]models.CalibrationEntry, map[string]float64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	summary, err := w.model.Calibrate(history)
	if err != nil {
		w.metrics.RecordError("calibrate")
		return nil, nil, err
	}
	w.metrics.ObserveDuration("calibrate", time.Since(start))

	entries := calibrationEntries(summary)
	for _, e := range entries {
		w.metrics.RecordScaler(e.Segment, e.PDScaler)
	}
	return entries, w.model.Scalers(), nil
}

// Score applies the current calibration state to a portfolio.
func (w *Workbench) Score(portfolio *table.Table) (*table.Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	scored, err := w.model.Score(portfolio)
	if err != nil {
		w.metrics.RecordError("score")
		return nil, err
	}
	w.metrics.ObserveDuration("score", time.Since(start))
	return scored, nil
}

// Stress derives a shocked view of a portfolio (scoring it first).
func (w *Workbench) Stress(portfolio *table.Table, params models.StressParams) (*table.Table, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	stressed, err := w.model.Stress(portfolio, params)
	if err != nil {
		w.metrics.RecordError("stress")
		return nil, err
	}
	w.metrics.ObserveDuration("stress", time.Since(start))
	return stressed, nil
}

// Scalers returns the current calibration state.
func (w *Workbench) Scalers() map[string]float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.model.Scalers()
}

// RunScenario executes the full demo workflow: generate a historical panel,
// calibrate on it, generate a fresh snapshot, stress it (which scores it),
// and aggregate portfolio-level expected loss.
func (w *Workbench) RunScenario(periods, accountsPerPeriod, snapshotCount int, params models.StressParams) (*models.ScenarioSummary, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	start := time.Now()
	panel := w.model.GenerateHistoricalPanel(periods, accountsPerPeriod, time.Time{}, 0)
	w.metrics.RecordRowsGenerated("panel", panel.Len())

	summary, err := w.model.Calibrate(panel)
	if err != nil {
		w.metrics.RecordError("scenario")
		return nil, fmt.Errorf("calibrate panel: %w", err)
	}
	entries := calibrationEntries(summary)
	for _, e := range entries {
		w.metrics.RecordScaler(e.Segment, e.PDScaler)
	}

	snap := w.model.GenerateBaselineSnapshot(snapshotCount, time.Time{})
	w.metrics.RecordRowsGenerated("snapshot", snap.Len())
	w.cache.Set(latestSnapshotKey, snap, w.snapshotTTL)

	stressed, err := w.model.Stress(snap, params)
	if err != nil {
		w.metrics.RecordError("scenario")
		return nil, fmt.Errorf("stress snapshot: %w", err)
	}

	out := summarize(panel.Len(), stressed)
	out.Calibration = entries
	w.metrics.ObserveDuration("scenario", time.Since(start))
	return out, nil
}

func calibrationEntries(summary *table.Table) []models.CalibrationEntry {
	segs := summary.Strings(riskmodel.ColSegment)
	exp := summary.Floats(riskmodel.ColExpectedPD)
	obs := summary.Floats(riskmodel.ColObservedDefaultRate)
	scl := summary.Floats(riskmodel.ColPDScaler)

	entries := make([]models.CalibrationEntry, summary.Len())
	for i := range entries {
		entries[i] = models.CalibrationEntry{
			Segment:             segs[i],
			ExpectedPD:          exp[i],
			ObservedDefaultRate: obs[i],
			PDScaler:            scl[i],
		}
	}
	return entries
}

func summarize(panelRows int, stressed *table.Table) *models.ScenarioSummary {
	segs := stressed.Strings(riskmodel.ColSegment)
	el := stressed.Floats(riskmodel.ColExpectedLoss)
	elStressed := stressed.Floats(riskmodel.ColExpectedLossStressed)
	pdCal := stressed.Floats(riskmodel.ColPDCalibrated)
	pdStr := stressed.Floats(riskmodel.ColPDStressed)

	type acc struct {
		n                  int
		el, elStressed     float64
		pdCalSum, pdStrSum float64
	}
	bySeg := make(map[string]*acc)
	var order []string
	out := &models.ScenarioSummary{PanelRows: panelRows, SnapshotRows: stressed.Len()}
	for i := 0; i < stressed.Len(); i++ {
		a, ok := bySeg[segs[i]]
		if !ok {
			a = &acc{}
			bySeg[segs[i]] = a
			order = append(order, segs[i])
		}
		a.n++
		a.el += el[i]
		a.elStressed += elStressed[i]
		a.pdCalSum += pdCal[i]
		a.pdStrSum += pdStr[i]
		out.ExpectedLoss += el[i]
		out.ExpectedLossStressed += elStressed[i]
	}
	for _, seg := range order {
		a := bySeg[seg]
		out.Segments = append(out.Segments, models.SegmentSummary{
			Segment:              seg,
			Accounts:             a.n,
			ExpectedLoss:         a.el,
			ExpectedLossStressed: a.elStressed,
			MeanPDCalibrated:     a.pdCalSum / float64(a.n),
			MeanPDStressed:       a.pdStrSum / float64(a.n),
		})
	}
	return out
}
