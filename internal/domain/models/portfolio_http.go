package models

// Requests for the portfolio HTTP endpoints. Defined in domain for
// consistency and reuse.

type SnapshotRequest struct {
	Count    int    `query:"count" json:"count" default:"100" validate:"gte=0,lte=1000000"`
	AsOfDate string `query:"as_of_date" json:"as_of_date,omitempty"`
}

type PanelRequest struct {
	Periods           int    `query:"periods" json:"periods" default:"12" validate:"gte=0,lte=600"`
	AccountsPerPeriod int    `query:"accounts_per_period" json:"accounts_per_period" default:"500" validate:"gte=0,lte=100000"`
	StartDate         string `query:"start_date" json:"start_date,omitempty"`
	PeriodLengthDays  int    `query:"period_length_days" json:"period_length_days" default:"30" validate:"gte=1,lte=366"`
}

type CalibrateRequest struct {
	Rows []map[string]any `json:"rows" validate:"required"`
}

type ScoreRequest struct {
	Rows []map[string]any `json:"rows" validate:"required"`
}

type StressRequest struct {
	Rows         []map[string]any `json:"rows" validate:"required"`
	PDMultiplier float64          `json:"pd_multiplier" default:"1.35" validate:"gte=0"`
	LGDShift     float64          `json:"lgd_shift" default:"0.05"`
	MacroShock   *float64         `json:"macro_shock,omitempty"`
}

type ScenarioRequest struct {
	Periods           int      `json:"periods" default:"12" validate:"gte=0,lte=600"`
	AccountsPerPeriod int      `json:"accounts_per_period" default:"500" validate:"gte=0,lte=100000"`
	SnapshotCount     int      `json:"snapshot_count" default:"1000" validate:"gte=0,lte=1000000"`
	PDMultiplier      float64  `json:"pd_multiplier" default:"1.35" validate:"gte=0"`
	LGDShift          float64  `json:"lgd_shift" default:"0.05"`
	MacroShock        *float64 `json:"macro_shock,omitempty"`
}

// Responses.

type TableResponse struct {
	Rows  []map[string]any `json:"rows"`
	Count int              `json:"count"`
}

type CalibrationResponse struct {
	Calibration []CalibrationEntry `json:"calibration"`
	Scalers     map[string]float64 `json:"scalers"`
}

type ScalersResponse struct {
	Scalers map[string]float64 `json:"scalers"`
}
