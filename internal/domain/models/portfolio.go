package models

// StressParams parameterizes a stress scenario. MacroShock is optional; nil
// means no macro shock.
type StressParams struct {
	PDMultiplier float64
	LGDShift     float64
	MacroShock   *float64
}

// DefaultStressParams returns the reference scenario: PDs bumped 35%, LGDs
// shifted up 5 points, no macro shock.
func DefaultStressParams() StressParams {
	return StressParams{PDMultiplier: 1.35, LGDShift: 0.05}
}

// CalibrationEntry is one segment's calibration result.
type CalibrationEntry struct {
	Segment             string  `json:"segment"`
	ExpectedPD          float64 `json:"expected_pd"`
	ObservedDefaultRate float64 `json:"observed_default_rate"`
	PDScaler            float64 `json:"pd_scaler"`
}

// SegmentSummary aggregates expected loss for one segment of a scenario run.
type SegmentSummary struct {
	Segment              string  `json:"segment"`
	Accounts             int     `json:"accounts"`
	ExpectedLoss         float64 `json:"expected_loss"`
	ExpectedLossStressed float64 `json:"expected_loss_stressed"`
	MeanPDCalibrated     float64 `json:"mean_pd_calibrated"`
	MeanPDStressed       float64 `json:"mean_pd_stressed"`
}

// ScenarioSummary is the portfolio-level result of an end-to-end scenario:
// panel generation, calibration, scoring of a fresh snapshot, and stress.
type ScenarioSummary struct {
	PanelRows            int                `json:"panel_rows"`
	SnapshotRows         int                `json:"snapshot_rows"`
	Calibration          []CalibrationEntry `json:"calibration"`
	ExpectedLoss         float64            `json:"expected_loss"`
	ExpectedLossStressed float64            `json:"expected_loss_stressed"`
	Segments             []SegmentSummary   `json:"segments"`
}
