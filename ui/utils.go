package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"groupstat/app"
	"groupstat/domain/grouped"
	"groupstat/internal/errors"
)

// cellText accepts a JSON string, number, or null for a table cell. Clients
// that post numbers get the same treatment as typed text.
type cellText string

func (c *cellText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = cellText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("cell must be a string or number: %w", err)
	}
	*c = cellText(n.String())
	return nil
}

type rowPayload struct {
	Midpoint  cellText `json:"midpoint"`
	Frequency cellText `json:"frequency"`
}

// calculatePayload is the body of POST /api/calculate
type calculatePayload struct {
	Mode string       `json:"mode"`
	Rows []rowPayload `json:"rows"`
}

func (p calculatePayload) toRequest() app.CalculationRequest {
	rows := make([]grouped.RawRow, len(p.Rows))
	for i, r := range p.Rows {
		rows[i] = grouped.RawRow{Midpoint: string(r.Midpoint), Frequency: string(r.Frequency)}
	}
	return app.CalculationRequest{Mode: p.Mode, Rows: rows}
}

// readCalculateRequest reads and decodes a POST /api/calculate body
func readCalculateRequest(r io.Reader) (app.CalculationRequest, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return app.CalculationRequest{}, &errors.AppError{Code: errors.CodeInvalidInput, Message: "unreadable request body", Cause: err}
	}
	return decodeCalculatePayload(body)
}

func decodeCalculatePayload(body []byte) (app.CalculationRequest, error) {
	var p calculatePayload
	if err := json.Unmarshal(body, &p); err != nil {
		return app.CalculationRequest{}, &errors.AppError{Code: errors.CodeInvalidInput, Message: "malformed request body", Cause: err}
	}
	return p.toRequest(), nil
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps an error onto a status and JSON body
func errorResponse(err error) (int, map[string]errorBody) {
	status := errors.HTTPStatus(err)
	msg := errors.UserMessage(err)
	if status >= 500 {
		msg = "internal error"
	}
	return status, map[string]errorBody{"error": {Code: errors.GetCode(err), Message: msg}}
}

func healthBody() map[string]string {
	return map[string]string{"status": "ok"}
}
