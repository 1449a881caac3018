package riskmodel

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"CreditForge/pkg/table"
	"CreditForge/pkg/util"
)

const accountIDFormat = "ACC-%06d"

// defaultPeriodLengthDays is the panel period spacing when none is given.
const defaultPeriodLengthDays = 30

// GenerateBaselineSnapshot draws a synthetic point-in-time portfolio of count
// accounts. A zero asOf defaults to today (UTC, midnight). Output is fully
// determined by the model's current random state: draws happen column by
// column, so a fixed seed reproduces the same table byte for byte.
func (m *Model) GenerateBaselineSnapshot(count int, asOf time.Time) *table.Table {
	if asOf.IsZero() {
		asOf = today()
	}

	choice := distuv.NewCategorical(m.segmentWeights(), m.src)
	segments := make([]any, count)
	segNames := make([]string, count)
	for i := 0; i < count; i++ {
		seg := m.cfg.Segments[int(choice.Rand())]
		segments[i] = seg
		segNames[i] = seg
	}

	ead := make([]any, count)
	for i := 0; i < count; i++ {
		ead[i] = float64(m.intn(m.cfg.EADRange[0], m.cfg.EADRange[1]))
	}

	lgdDist := distuv.Uniform{Min: m.cfg.LGDRange[0], Max: m.cfg.LGDRange[1], Src: m.src}
	lgd := make([]any, count)
	for i := 0; i < count; i++ {
		lgd[i] = lgdDist.Rand()
	}

	couponDist := distuv.Uniform{Min: m.cfg.CouponRange[0], Max: m.cfg.CouponRange[1], Src: m.src}
	coupon := make([]any, count)
	for i := 0; i < count; i++ {
		coupon[i] = couponDist.Rand()
	}

	term := make([]any, count)
	for i := 0; i < count; i++ {
		term[i] = m.intn(m.cfg.TermRangeMonths[0], m.cfg.TermRangeMonths[1])
	}

	// Mild idiosyncratic noise so PDs are not perfectly uniform per segment.
	noise := distuv.Normal{Mu: 1.0, Sigma: 0.15, Src: m.src}
	pdEstimate := make([]any, count)
	for i := 0; i < count; i++ {
		base := m.cfg.BasePD[segNames[i]]
		pdEstimate[i] = clamp(base*noise.Rand(), m.cfg.PDFloor, m.cfg.PDCap)
	}

	ids := make([]any, count)
	dates := make([]any, count)
	for i := 0; i < count; i++ {
		ids[i] = fmt.Sprintf(accountIDFormat, i)
		dates[i] = asOf
	}

	t := table.New(
		ColAccountID, ColAsOfDate, ColSegment, ColEAD,
		ColLGD, ColCoupon, ColTermMonths, ColPDEstimate,
	)
	t.SetColumn(ColAccountID, ids)
	t.SetColumn(ColAsOfDate, dates)
	t.SetColumn(ColSegment, segments)
	t.SetColumn(ColEAD, ead)
	t.SetColumn(ColLGD, lgd)
	t.SetColumn(ColCoupon, coupon)
	t.SetColumn(ColTermMonths, term)
	t.SetColumn(ColPDEstimate, pdEstimate)
	return t
}

// GenerateHistoricalPanel builds a multi-period default/loss panel. Each
// period is a fresh baseline snapshot with Bernoulli default flags drawn from
// per-account pd_estimate, an independently drawn realized LGD, the implied
// loss, and a 1-indexed period tag. Account IDs restart per period; downstream
// calibration groups by segment, not ID. A zero start defaults to today minus
// periods*periodLengthDays; periodLengthDays <= 0 falls back to 30.
func (m *Model) GenerateHistoricalPanel(periods, accountsPerPeriod int, start time.Time, periodLengthDays int) *table.Table {
	if periodLengthDays <= 0 {
		periodLengthDays = defaultPeriodLengthDays
	}
	if start.IsZero() {
		start = today().AddDate(0, 0, -periods*periodLengthDays)
	}

	panel := table.New(
		ColAccountID, ColAsOfDate, ColSegment, ColEAD,
		ColLGD, ColCoupon, ColTermMonths, ColPDEstimate,
		ColDefaultFlag, ColRealizedLGD, ColLoss, ColPeriod,
	)

	rlgdDist := distuv.Uniform{Min: m.cfg.LGDRange[0], Max: m.cfg.LGDRange[1], Src: m.src}

	for i := 0; i < periods; i++ {
		asOf := start.AddDate(0, 0, i*periodLengthDays)
		snap := m.GenerateBaselineSnapshot(accountsPerPeriod, asOf)

		pd := snap.Floats(ColPDEstimate)
		eadVals := snap.Floats(ColEAD)

		flags := make([]any, accountsPerPeriod)
		for j := 0; j < accountsPerPeriod; j++ {
			flags[j] = distuv.Bernoulli{P: pd[j], Src: m.src}.Rand() == 1
		}

		rlgd := make([]any, accountsPerPeriod)
		loss := make([]any, accountsPerPeriod)
		period := make([]any, accountsPerPeriod)
		for j := 0; j < accountsPerPeriod; j++ {
			v := rlgdDist.Rand()
			rlgd[j] = v
			if flags[j].(bool) {
				loss[j] = eadVals[j] * v
			} else {
				loss[j] = 0.0
			}
			period[j] = i + 1
		}

		snap.SetColumn(ColDefaultFlag, flags)
		snap.SetColumn(ColRealizedLGD, rlgd)
		snap.SetColumn(ColLoss, loss)
		snap.SetColumn(ColPeriod, period)

		if err := panel.Append(snap); err != nil {
			// Columns are built above; a mismatch here is a programming error.
			panic(err)
		}
	}
	return panel
}

// segmentWeights returns the sampling weights for the configured segments:
// the reference mix for exactly three segments, otherwise uniform. Weights
// sum to 1.
func (m *Model) segmentWeights() []float64 {
	n := len(m.cfg.Segments)
	if n == 3 {
		return []float64{0.45, 0.35, 0.20}
	}
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}
	return w
}

// intn draws an integer uniformly from [lo, hi] inclusive.
func (m *Model) intn(lo, hi int) int {
	return lo + m.rng.Intn(hi-lo+1)
}

func today() time.Time {
	return util.Midnight(time.Now())
}
