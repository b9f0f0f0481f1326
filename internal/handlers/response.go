package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/shopspring/decimal"
)

// MessageResponse represents a plain message response
// swagger:model MessageResponse
type MessageResponse struct {
	// Human readable outcome
	// default: Internal server error
	Message string `json:"message"`
}

const msgInternalError = "Internal server error"

// amount renders a decimal as a JSON number without going through float64.
func amount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}
