package service

import (
	"time"

	"CreditForge/internal/domain/models"
	"CreditForge/pkg/table"
)

// PortfolioGenerator produces reproducible synthetic portfolio tables.
type PortfolioGenerator interface {
	GenerateBaselineSnapshot(count int, asOf time.Time) *table.Table
	GenerateHistoricalPanel(periods, accountsPerPeriod int, start time.Time, periodLengthDays int) *table.Table
}

// Calibrator computes per-segment PD scalers from a historical panel and
// exposes the resulting calibration state.
type Calibrator interface {
	Calibrate(history *table.Table) (*table.Table, error)
	Scalers() map[string]float64
}

// Scorer applies calibration state to a portfolio and computes expected loss.
type Scorer interface {
	Score(portfolio *table.Table) (*table.Table, error)
}

// StressEngine derives a shocked view of a portfolio.
type StressEngine interface {
	Stress(portfolio *table.Table, params models.StressParams) (*table.Table, error)
}

// RiskModel is the full in-process model surface: generation, calibration,
// scoring, and stress over shared mutable calibration state.
type RiskModel interface {
	PortfolioGenerator
	Calibrator
	Scorer
	StressEngine
}
