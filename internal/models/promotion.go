package models

import "github.com/shopspring/decimal"

// DefaultPromotionThreshold is the total a user has to exceed to become a high spender.
var DefaultPromotionThreshold = decimal.NewFromInt(1000)

// PromotionEvent is published for every created high-spender entry.
type PromotionEvent struct {
	EventID       string          `json:"event_id"`       // EventID is a unique identifier for the event.
	UserID        int64           `json:"user_id"`        // UserID is the promoted user.
	TotalSpending decimal.Decimal `json:"total_spending"` // TotalSpending is the stored total.
	Timestamp     int64           `json:"timestamp"`      // Timestamp is the Unix time (in seconds) of the promotion.
}
