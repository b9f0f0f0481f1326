package models

import "github.com/shopspring/decimal"

// SpendingDB represents a row of the user_spending table.
// Rows are append-only and may reference a user without a profile.
type SpendingDB struct {
	UserID     int64           `json:"user_id" db:"user_id"`         // Owner of the record
	MoneySpent decimal.Decimal `json:"money_spent" db:"money_spent"` // Amount spent, never negative
	Year       int             `json:"year" db:"year"`               // Period the amount belongs to
}

// HighSpenderDB represents a row of the high_spenders table
type HighSpenderDB struct {
	UserID        int64           `json:"user_id" db:"user_id"`               // Primary key, at most one entry per user
	TotalSpending decimal.Decimal `json:"total_spending" db:"total_spending"` // Total that was submitted on promotion
}
