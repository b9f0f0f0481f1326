package handlers

//go:generate mockgen -source=total_spent.go -destination=mock_total_spent.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/middlewares"
	"github.com/sbilibin2017/gw-spending-analytics/internal/services"
	"github.com/shopspring/decimal"
)

// UserIDParam is the URL parameter holding the user identifier.
const UserIDParam = "user_id"

const msgNoSpendingData = "No spending data found for the user."

// TotalSpentReader defines the interface that the service must implement.
type TotalSpentReader interface {
	TotalSpent(ctx context.Context, userID int64) (decimal.Decimal, error)
}

// TotalSpentResponse represents the total spending of a user
// swagger:model TotalSpentResponse
type TotalSpentResponse struct {
	// User identifier
	// default: 5
	UserID int64 `json:"user_id"`

	// Sum of all spending records of the user
	// default: 500
	TotalSpending json.Number `json:"total_spending" swaggertype:"number"`
}

// NewTotalSpentHandler returns an HTTP handler for a user's total spending.
// @Summary Get total spending of a user
// @Description Sums every spending record of the user
// @Tags analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.TotalSpentResponse "Total spending"
// @Failure 404 {object} handlers.MessageResponse "No spending data found for the user."
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /total_spent/{user_id} [get]
func NewTotalSpentHandler(svc TotalSpentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, UserIDParam), 10, 64)
		if err != nil {
			logger.Log.Warnw("invalid user id",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "user_id", chi.URLParam(r, UserIDParam), "error", err)
			writeMessage(w, http.StatusNotFound, msgNoSpendingData)
			return
		}

		total, err := svc.TotalSpent(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrNoSpendingData) {
				writeMessage(w, http.StatusNotFound, msgNoSpendingData)
				return
			}
			logger.Log.Errorw("failed to get total spending",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "userID", userID, "error", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, TotalSpentResponse{
			UserID:        userID,
			TotalSpending: amount(total),
		})
	}
}
