package riskmodel

import (
	"CreditForge/internal/domain/models"
	domsvc "CreditForge/internal/domain/service"
	"CreditForge/pkg/table"
)

// Stress derives a shocked view of a portfolio. The input is scored first, so
// it need not already carry calibrated columns. The stressed PD keeps the
// two-term form multiplier*pd + shock*pd rather than the factored
// (multiplier+shock)*pd; downstream numeric parity depends on it.
func (m *Model) Stress(portfolio *table.Table, params models.StressParams) (*table.Table, error) {
	scored, err := m.Score(portfolio)
	if err != nil {
		return nil, err
	}

	shock := 0.0
	if params.MacroShock != nil {
		shock = *params.MacroShock
	}

	pdCal := scored.Floats(ColPDCalibrated)
	lgd := scored.Floats(ColLGD)
	ead := scored.Floats(ColEAD)

	n := scored.Len()
	pdStressed := make([]any, n)
	lgdStressed := make([]any, n)
	elStressed := make([]any, n)
	for i := 0; i < n; i++ {
		ps := clamp(pdCal[i]*params.PDMultiplier+shock*pdCal[i], m.cfg.PDFloor, m.cfg.PDCap)
		ls := clamp(lgd[i]+params.LGDShift, 0.0, 1.0)
		pdStressed[i] = ps
		lgdStressed[i] = ls
		elStressed[i] = ead[i] * ls * ps
	}

	scored.SetColumn(ColPDStressed, pdStressed)
	scored.SetColumn(ColLGDStressed, lgdStressed)
	scored.SetColumn(ColExpectedLossStressed, elStressed)
	return scored, nil
}

var _ domsvc.RiskModel = (*Model)(nil)
