package riskmodel

// Column names shared across the generator, calibrator, scorer, and stress
// engine. Baseline snapshot columns appear in this order.
const (
	ColAccountID  = "account_id"
	ColAsOfDate   = "as_of_date"
	ColSegment    = "segment"
	ColEAD        = "ead"
	ColLGD        = "lgd"
	ColCoupon     = "coupon"
	ColTermMonths = "term_months"
	ColPDEstimate = "pd_estimate"

	ColDefaultFlag = "default_flag"
	ColRealizedLGD = "realized_lgd"
	ColLoss        = "loss"
	ColPeriod      = "period"

	ColPDCalibrated = "pd_calibrated"
	ColExpectedLoss = "expected_loss"

	ColPDStressed           = "pd_stressed"
	ColLGDStressed          = "lgd_stressed"
	ColExpectedLossStressed = "expected_loss_stressed"

	ColExpectedPD          = "expected_pd"
	ColObservedDefaultRate = "observed_default_rate"
	ColPDScaler            = "pd_scaler"
)
