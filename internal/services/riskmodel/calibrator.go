package riskmodel

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"CreditForge/pkg/table"
)

// Scaler clamp bounds: calibration never moves a segment PD by more than 4x
// up or 4x down.
const (
	scalerMin = 0.25
	scalerMax = 4.0
)

// Calibrate computes per-segment PD scalers from a historical panel by
// comparing observed default rates against the mean predicted PD
// (ratio of means). Scalers for observed segments are overwritten on the
// model; segments absent from the panel keep their previous scaler. The
// returned summary holds one row per observed segment in natural sort order.
func (m *Model) Calibrate(history *table.Table) (*table.Table, error) {
	if err := history.Require(ColSegment, ColPDEstimate, ColDefaultFlag); err != nil {
		return nil, err
	}

	segs := history.Strings(ColSegment)
	pd := history.Floats(ColPDEstimate)
	flags := history.Floats(ColDefaultFlag)

	groups := make(map[string][]int)
	for i, seg := range segs {
		groups[seg] = append(groups[seg], i)
	}
	names := make([]string, 0, len(groups))
	for seg := range groups {
		names = append(names, seg)
	}
	sort.Strings(names)

	segCol := make([]any, 0, len(names))
	expCol := make([]any, 0, len(names))
	obsCol := make([]any, 0, len(names))
	sclCol := make([]any, 0, len(names))

	for _, seg := range names {
		idx := groups[seg]
		segPD := make([]float64, len(idx))
		segFlags := make([]float64, len(idx))
		for j, i := range idx {
			segPD[j] = pd[i]
			segFlags[j] = flags[i]
		}
		observed := stat.Mean(segFlags, nil)
		expected := stat.Mean(segPD, nil)

		scaler := 1.0
		if expected != 0 {
			scaler = clamp(observed/expected, scalerMin, scalerMax)
		}
		m.scalers[seg] = scaler

		segCol = append(segCol, seg)
		expCol = append(expCol, expected)
		obsCol = append(obsCol, observed)
		sclCol = append(sclCol, scaler)
	}

	out := table.New(ColSegment, ColExpectedPD, ColObservedDefaultRate, ColPDScaler)
	out.SetColumn(ColSegment, segCol)
	out.SetColumn(ColExpectedPD, expCol)
	out.SetColumn(ColObservedDefaultRate, obsCol)
	out.SetColumn(ColPDScaler, sclCol)
	return out, nil
}
