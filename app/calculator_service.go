package app

import (
	"context"
	"fmt"
	"time"

	"groupstat/domain/core"
	"groupstat/domain/grouped"
	"groupstat/domain/stats"
	"groupstat/internal"
	"groupstat/internal/config"
	"groupstat/internal/errors"
	"groupstat/ports"
)

// MsgNoMidpoints is reported when no row has a usable midpoint.
const MsgNoMidpoints = "Please enter at least one midpoint value."

// CalculatorService turns raw rows into a computed, display-ready result
type CalculatorService struct {
	config config.CalculatorConfig
	logger *internal.Logger
}

// CalculationRequest is one user action: a mode and the rows on screen
type CalculationRequest struct {
	Mode string           `json:"mode"`
	Rows []grouped.RawRow `json:"rows"`
}

// Calculation is the outcome of a successful request
type Calculation struct {
	ID      core.ID      `json:"id"`
	Mode    stats.Mode   `json:"mode"`
	Result  stats.Result `json:"result"`
	Summary Summary      `json:"summary"`

	RowsReceived         int       `json:"rows_received"`
	PointsUsed           int       `json:"points_used"`
	RowsDropped          int       `json:"rows_dropped"`
	FrequenciesDefaulted int       `json:"frequencies_defaulted"`
	CreatedAt            time.Time `json:"created_at"`
}

// NewCalculatorService creates a calculator service. A nil logger uses
// internal.DefaultLogger.
func NewCalculatorService(cfg config.CalculatorConfig, logger *internal.Logger) *CalculatorService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &CalculatorService{
		config: cfg,
		logger: logger.With("Calculator"),
	}
}

// DefaultMode returns the configured mode used when a request names none.
func (s *CalculatorService) DefaultMode() string {
	if s.config.DefaultMode == "" {
		return string(stats.ModeMean)
	}
	return s.config.DefaultMode
}

// Calculate validates the request, normalizes its rows and runs the
// selected measure.
//
// Errors carry an AppError code: INVALID_INPUT for a bad mode or an
// oversized request, VALIDATION_ERROR when no midpoint survives
// normalization.
func (s *CalculatorService) Calculate(ctx context.Context, req CalculationRequest) (*Calculation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	modeName := req.Mode
	if modeName == "" {
		modeName = s.DefaultMode()
	}
	mode, err := stats.ParseMode(modeName)
	if err != nil {
		msg := fmt.Sprintf("unknown mode %q: choose mean, median or mode", modeName)
		return nil, &errors.AppError{Code: errors.CodeInvalidInput, Message: msg, Cause: err}
	}

	if s.config.MaxRows > 0 && len(req.Rows) > s.config.MaxRows {
		cause := fmt.Errorf("%w: %d rows, limit %d", core.ErrTooManyRows, len(req.Rows), s.config.MaxRows)
		return nil, &errors.AppError{Code: errors.CodeInvalidInput, Message: "too many rows", Cause: cause}
	}

	ds := grouped.Normalize(req.Rows)
	dropped := grouped.Dropped(req.Rows)
	defaulted := grouped.Defaulted(req.Rows)
	if dropped > 0 || defaulted > 0 {
		s.logger.Debug("normalized %d rows: %d dropped, %d frequencies defaulted to %v",
			len(req.Rows), dropped, defaulted, grouped.DefaultFrequency)
	}

	if ds.IsEmpty() {
		s.logger.Info("rejected %s request: no usable midpoint in %d rows", mode, len(req.Rows))
		return nil, &errors.AppError{Code: errors.CodeValidationError, Message: MsgNoMidpoints, Cause: core.ErrEmptyDataset}
	}

	if mode == stats.ModeMedian && s.config.MaxTotalFrequency > 0 {
		if total := stats.TotalFrequency(ds); total > s.config.MaxTotalFrequency {
			cause := fmt.Errorf("%w: %.0f exceeds %.0f", core.ErrFrequencyTooLarge, total, s.config.MaxTotalFrequency)
			return nil, &errors.AppError{Code: errors.CodeInvalidInput, Message: "total frequency too large", Cause: cause}
		}
	}

	result, err := stats.Compute(mode, ds)
	if err != nil {
		internalErr := errors.InternalError(fmt.Sprintf("failed to compute %s", mode))
		internalErr.Cause = err
		return nil, internalErr
	}
	if !resultDefined(result) {
		return nil, errors.ValidationError(fmt.Sprintf("Unable to calculate %s. Check your inputs.", mode))
	}

	calc := &Calculation{
		ID:                   core.NewID(),
		Mode:                 mode,
		Result:               result,
		Summary:              Summarize(result),
		RowsReceived:         len(req.Rows),
		PointsUsed:           ds.Len(),
		RowsDropped:          dropped,
		FrequenciesDefaulted: defaulted,
		CreatedAt:            time.Now().UTC(),
	}

	s.logger.Info("calculation %s: mode=%s points=%d result=%s", calc.ID, mode, ds.Len(), calc.Summary.Main)
	return calc, nil
}

// CalculateFrom reads every row from src and calculates over them.
func (s *CalculatorService) CalculateFrom(ctx context.Context, mode string, src ports.RowSource) (*Calculation, error) {
	rows, err := src.ReadRows(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rows from %s", src.Name())
	}
	s.logger.Debug("read %d rows from %s", len(rows), src.Name())
	return s.Calculate(ctx, CalculationRequest{Mode: mode, Rows: rows})
}

func resultDefined(r stats.Result) bool {
	switch v := r.(type) {
	case stats.MeanResult:
		return v.Value.Valid
	case stats.MedianResult:
		return v.Value.Valid
	case stats.ModeResult:
		return v.MaxFrequency.Valid
	}
	return false
}
