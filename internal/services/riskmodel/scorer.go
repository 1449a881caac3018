package riskmodel

import (
	"CreditForge/pkg/table"
)

// Score applies the current calibration state to a portfolio and computes
// expected loss per account. Segments the calibrator has never seen fall back
// to a scaler of 1.0; scoring never fails on unknown segments. The input is
// not mutated: the result is a copy with pd_calibrated and expected_loss
// appended.
func (m *Model) Score(portfolio *table.Table) (*table.Table, error) {
	if err := portfolio.Require(ColAccountID, ColSegment, ColEAD, ColLGD, ColPDEstimate); err != nil {
		return nil, err
	}

	segs := portfolio.Strings(ColSegment)
	pd := portfolio.Floats(ColPDEstimate)
	ead := portfolio.Floats(ColEAD)
	lgd := portfolio.Floats(ColLGD)

	n := portfolio.Len()
	calibrated := make([]any, n)
	expectedLoss := make([]any, n)
	for i := 0; i < n; i++ {
		scaler, ok := m.scalers[segs[i]]
		if !ok {
			scaler = 1.0
		}
		pdCal := clamp(pd[i]*scaler, m.cfg.PDFloor, m.cfg.PDCap)
		calibrated[i] = pdCal
		expectedLoss[i] = ead[i] * lgd[i] * pdCal
	}

	out := portfolio.Copy()
	out.SetColumn(ColPDCalibrated, calibrated)
	out.SetColumn(ColExpectedLoss, expectedLoss)
	return out, nil
}
