package api

import (
	"errors"
	"time"

	"CreditForge/internal/domain/models"
	"CreditForge/internal/usecase"
	xhttp "CreditForge/pkg/http"
	xlogger "CreditForge/pkg/logger"
	"CreditForge/pkg/table"
	"CreditForge/pkg/util"

	"github.com/labstack/echo/v4"
)

// columnHint fixes the column order of tables rebuilt from JSON rows, so the
// service returns columns in the same order the generator emits them.
var columnHint = []string{
	"account_id", "as_of_date", "segment", "ead",
	"lgd", "coupon", "term_months", "pd_estimate",
	"default_flag", "realized_lgd", "loss", "period",
	"pd_calibrated", "expected_loss",
	"pd_stressed", "lgd_stressed", "expected_loss_stressed",
}

// PortfolioEchoHandler implements Echo-based HTTP handlers for the model
// service.
type PortfolioEchoHandler struct {
	logger *xlogger.Logger
	wb     *usecase.Workbench
}

func NewPortfolioEchoHandler(logger *xlogger.Logger, wb *usecase.Workbench) *PortfolioEchoHandler {
	return &PortfolioEchoHandler{logger: logger, wb: wb}
}

func (h *PortfolioEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/portfolio/snapshot", h.Snapshot)
	g.GET("/portfolio/snapshot/latest", h.LatestSnapshot)
	g.POST("/portfolio/panel", h.Panel)
	g.POST("/portfolio/score", h.Score)
	g.POST("/portfolio/stress", h.Stress)
	g.POST("/model/calibrate", h.Calibrate)
	g.GET("/model/scalers", h.Scalers)
	g.POST("/scenario/run", h.Scenario)
}

func (h *PortfolioEchoHandler) Snapshot(c echo.Context) error {
	req := &models.SnapshotRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	asOf := util.ParseTimeDefault(req.AsOfDate, time.Time{})

	snap := h.wb.GenerateSnapshot(req.Count, asOf)
	return xhttp.SuccessResponse(c, tableResponse(snap))
}

func (h *PortfolioEchoHandler) LatestSnapshot(c echo.Context) error {
	snap, ok := h.wb.LatestSnapshot()
	if !ok {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("no snapshot generated yet"))
	}
	return xhttp.SuccessResponse(c, tableResponse(snap))
}

func (h *PortfolioEchoHandler) Panel(c echo.Context) error {
	req := &models.PanelRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	start := util.ParseTimeDefault(req.StartDate, time.Time{})

	panel := h.wb.GeneratePanel(req.Periods, req.AccountsPerPeriod, start, req.PeriodLengthDays)
	return xhttp.SuccessResponse(c, tableResponse(panel))
}

func (h *PortfolioEchoHandler) Score(c echo.Context) error {
	req := &models.ScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	scored, err := h.wb.Score(table.FromRows(req.Rows, columnHint...))
	if err != nil {
		h.logger.Error("score usecase error", xlogger.Error(err))
		return h.tableError(c, err)
	}
	return xhttp.SuccessResponse(c, tableResponse(scored))
}

func (h *PortfolioEchoHandler) Stress(c echo.Context) error {
	req := &models.StressRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	params := models.StressParams{
		PDMultiplier: req.PDMultiplier,
		LGDShift:     req.LGDShift,
		MacroShock:   req.MacroShock,
	}

	stressed, err := h.wb.Stress(table.FromRows(req.Rows, columnHint...), params)
	if err != nil {
		h.logger.Error("stress usecase error", xlogger.Error(err))
		return h.tableError(c, err)
	}
	return xhttp.SuccessResponse(c, tableResponse(stressed))
}

func (h *PortfolioEchoHandler) Calibrate(c echo.Context) error {
	req := &models.CalibrateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	entries, scalers, err := h.wb.Calibrate(table.FromRows(req.Rows, columnHint...))
	if err != nil {
		h.logger.Error("calibrate usecase error", xlogger.Error(err))
		return h.tableError(c, err)
	}
	return xhttp.SuccessResponse(c, models.CalibrationResponse{
		Calibration: entries,
		Scalers:     scalers,
	})
}

func (h *PortfolioEchoHandler) Scalers(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.ScalersResponse{Scalers: h.wb.Scalers()})
}

func (h *PortfolioEchoHandler) Scenario(c echo.Context) error {
	req := &models.ScenarioRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	params := models.StressParams{
		PDMultiplier: req.PDMultiplier,
		LGDShift:     req.LGDShift,
		MacroShock:   req.MacroShock,
	}

	summary, err := h.wb.RunScenario(req.Periods, req.AccountsPerPeriod, req.SnapshotCount, params)
	if err != nil {
		h.logger.Error("scenario usecase error", xlogger.Error(err))
		return h.tableError(c, err)
	}
	return xhttp.SuccessResponse(c, summary)
}

// tableError maps core errors onto the API envelope: a missing-columns
// condition is a client error carrying the sorted missing names.
func (h *PortfolioEchoHandler) tableError(c echo.Context, err error) error {
	var mce *table.MissingColumnsError
	if errors.As(err, &mce) {
		appErr := xhttp.BadRequestErrorf("missing required columns").
			WithParam("missing", mce.Columns)
		return xhttp.AppErrorResponse(c, appErr)
	}
	return xhttp.AppErrorResponse(c, err)
}

func tableResponse(t *table.Table) models.TableResponse {
	return models.TableResponse{Rows: t.Rows(), Count: t.Len()}
}
