package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// SpendingReadRepository runs the aggregate queries over user_spending
type SpendingReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSpendingReadRepository(db *sqlx.DB, txGetter TxGetter) *SpendingReadRepository {
	return &SpendingReadRepository{db: db, txGetter: txGetter}
}

// SumByUserID returns the total money_spent of a user.
// The result is invalid (NULL) when the user has no records.
func (r *SpendingReadRepository) SumByUserID(ctx context.Context, userID int64) (decimal.NullDecimal, error) {
	const query = `
		SELECT SUM(money_spent)
		FROM user_spending
		WHERE user_id = ?
	`

	ex := executor(ctx, r.db, r.txGetter)

	var total decimal.NullDecimal
	err := sqlx.GetContext(ctx, ex, &total, ex.Rebind(query), userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", total,
		"error", err,
	)

	return total, err
}

// AverageByAgeBucket returns the mean money_spent over records whose owner's
// age falls into bucket. The result is invalid (NULL) when nothing matches.
func (r *SpendingReadRepository) AverageByAgeBucket(ctx context.Context, bucket models.AgeBucket) (decimal.NullDecimal, error) {
	query := `
		SELECT AVG(s.money_spent)
		FROM user_spending s
		JOIN user_info u ON s.user_id = u.user_id
		WHERE u.age >= ?
	`
	args := []any{bucket.Low}
	if bucket.High != nil {
		query += ` AND u.age <= ?`
		args = append(args, *bucket.High)
	}

	ex := executor(ctx, r.db, r.txGetter)

	var avg decimal.NullDecimal
	err := sqlx.GetContext(ctx, ex, &avg, ex.Rebind(query), args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", avg,
		"error", err,
	)

	return avg, err
}
