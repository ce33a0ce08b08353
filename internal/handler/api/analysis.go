package api

import (
	"errors"
	"net/http"

	"WigLens/internal/domain/models"
	"WigLens/internal/ta"
	"WigLens/internal/usecase"
	xhttp "WigLens/pkg/http"
	xlogger "WigLens/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler exposes the analysis engine over HTTP.
type AnalysisHandler struct {
	logger *xlogger.Logger
	uc     *usecase.AnalysisUseCase
}

func NewAnalysisHandler(logger *xlogger.Logger, uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{logger: logger, uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/analysis", h.Analyze)
	g.GET("/series", h.Series)
	e.GET("/health", h.Health)
}

// Analyze returns the full bundle: candles, indicator arrays, levels and the
// price target for one symbol.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.uc.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:        req.Symbol,
		Price:         req.Price,
		ChangePercent: req.Change,
		Days:          req.Days,
		Window:        req.Window,
	})
	if err != nil {
		if errors.Is(err, ta.ErrInvalidInput) {
			return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("analysis usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Series returns only the window-filtered candle history for charting.
func (h *AnalysisHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	candles, err := h.uc.Series(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:        req.Symbol,
		Price:         req.Price,
		ChangePercent: req.Change,
		Days:          req.Days,
		Window:        req.Window,
	})
	if err != nil {
		if errors.Is(err, ta.ErrInvalidInput) {
			return xhttp.BadRequestResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"symbol":  req.Symbol,
		"window":  req.Window,
		"count":   len(candles),
		"candles": candles,
	})
}

// Health reports liveness.
func (h *AnalysisHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
