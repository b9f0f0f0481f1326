package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/storage"
	"github.com/shopspring/decimal"
)

// HighSpenderWriteRepository inserts into the high_spenders registry
type HighSpenderWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewHighSpenderWriteRepository(db *sqlx.DB, txGetter TxGetter) *HighSpenderWriteRepository {
	return &HighSpenderWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new entry. It never overwrites: an existing entry for
// userID yields storage.ErrDuplicateKey and leaves the stored row untouched.
func (r *HighSpenderWriteRepository) Save(ctx context.Context, userID int64, totalSpending decimal.Decimal) error {
	const query = `
		INSERT INTO high_spenders (user_id, total_spending)
		VALUES (?, ?)
	`
	args := []any{userID, totalSpending}

	ex := executor(ctx, r.db, r.txGetter)

	res, err := ex.ExecContext(ctx, ex.Rebind(query), args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return storage.MapError(err)
}
