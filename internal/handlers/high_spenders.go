package handlers

//go:generate mockgen -source=high_spenders.go -destination=mock_high_spenders.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/middlewares"
	"github.com/sbilibin2017/gw-spending-analytics/internal/services"
	"github.com/shopspring/decimal"
)

const (
	msgInvalidPromotion = "Invalid data format. Please provide user_id and total_spending."
	msgPromoted         = "User data successfully inserted into high_spenders."
	msgAlreadyPromoted  = "User already exists in high_spenders."
	msgUnknownUser      = "User profile does not exist."
)

// HighSpenderPromoter defines the interface that the service must implement.
type HighSpenderPromoter interface {
	Promote(ctx context.Context, userID *int64, totalSpending decimal.NullDecimal) error
}

// HighSpenderRequest represents the JSON body for promoting a user
// swagger:model HighSpenderRequest
type HighSpenderRequest struct {
	// User identifier, zero is a valid id
	// required: true
	// default: 5
	UserID *int64 `json:"user_id"`

	// Total spending submitted for the user, a JSON number
	// required: true
	// default: 1200
	TotalSpending NumericAmount `json:"total_spending" swaggertype:"number"`
}

var errQuotedAmount = errors.New("amount must be a JSON number")

// NumericAmount decodes a JSON number, or null as an absent amount.
// Quoted amounts are rejected.
type NumericAmount decimal.NullDecimal

func (a *NumericAmount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return errQuotedAmount
	}
	return (*decimal.NullDecimal)(a).UnmarshalJSON(b)
}

// NewWriteHighSpendersHandler returns an HTTP handler that promotes a user into high_spenders.
// @Summary Promote a high spender
// @Description Inserts the user into high_spenders when total_spending exceeds the threshold. Existing entries are never updated.
// @Tags high_spenders
// @Accept json
// @Produce json
// @Param request body handlers.HighSpenderRequest true "Promotion request"
// @Success 201 {object} handlers.MessageResponse "User data successfully inserted into high_spenders."
// @Failure 400 {object} handlers.MessageResponse "Invalid data or spending below threshold"
// @Failure 409 {object} handlers.MessageResponse "User already exists in high_spenders."
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /write_high_spenders [post]
func NewWriteHighSpendersHandler(svc HighSpenderPromoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HighSpenderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Warnw("failed to decode promotion request",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusBadRequest, msgInvalidPromotion)
			return
		}

		err := svc.Promote(r.Context(), req.UserID, decimal.NullDecimal(req.TotalSpending))

		var thErr *services.ThresholdError
		switch {
		case err == nil:
			writeMessage(w, http.StatusCreated, msgPromoted)
		case errors.Is(err, services.ErrInvalidInput):
			writeMessage(w, http.StatusBadRequest, msgInvalidPromotion)
		case errors.As(err, &thErr):
			writeMessage(w, http.StatusBadRequest,
				fmt.Sprintf("User spending does not meet the threshold of $%s.", thErr.Threshold))
		case errors.Is(err, services.ErrAlreadyExists):
			writeMessage(w, http.StatusConflict, msgAlreadyPromoted)
		case errors.Is(err, services.ErrUnknownUser):
			writeMessage(w, http.StatusConflict, msgUnknownUser)
		default:
			logger.Log.Errorw("failed to promote user",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "userID", req.UserID, "error", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
		}
	}
}
