package repositories

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
	"github.com/sbilibin2017/gw-spending-analytics/internal/storage"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupSQLite opens a bootstrapped in-memory database.
func setupSQLite(t *testing.T) *sqlx.DB {
	ctx := context.Background()
	db, err := storage.Open(ctx, storage.DriverSQLite, ":memory:", 1, 1)
	require.NoError(t, err)
	require.NoError(t, storage.Bootstrap(ctx, db))
	t.Cleanup(func() { db.Close() })
	return db
}

// --- Seed helpers ---
func seedUser(t *testing.T, db *sqlx.DB, u models.UserDB) {
	_, err := db.NamedExec(
		`INSERT INTO user_info (user_id, name, email, age) VALUES (:user_id, :name, :email, :age)`, u)
	require.NoError(t, err)
}

func seedSpending(t *testing.T, db *sqlx.DB, records ...models.SpendingDB) {
	for _, rec := range records {
		_, err := db.NamedExec(
			`INSERT INTO user_spending (user_id, money_spent, year) VALUES (:user_id, :money_spent, :year)`, rec)
		require.NoError(t, err)
	}
}

func spend(userID int64, amount int64, year int) models.SpendingDB {
	return models.SpendingDB{UserID: userID, MoneySpent: decimal.NewFromInt(amount), Year: year}
}

func TestSQLite_SumByUserID(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	repo := NewSpendingReadRepository(db, nil)

	seedUser(t, db, models.UserDB{UserID: 5, Name: "eve", Email: "eve@example.com", Age: 26})
	seedSpending(t, db, spend(5, 200, 2023), spend(5, 300, 2024), spend(9, 0, 2024))

	total, err := repo.SumByUserID(ctx, 5)
	require.NoError(t, err)
	assert.True(t, total.Valid)
	assert.True(t, decimal.NewFromInt(500).Equal(total.Decimal), "got %s", total.Decimal)

	// Orphaned record with a zero amount is still data.
	total, err = repo.SumByUserID(ctx, 9)
	require.NoError(t, err)
	assert.True(t, total.Valid)
	assert.True(t, total.Decimal.IsZero())

	total, err = repo.SumByUserID(ctx, 42)
	require.NoError(t, err)
	assert.False(t, total.Valid)
}

func TestSQLite_AverageByAgeBucket(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	repo := NewSpendingReadRepository(db, nil)

	seedUser(t, db, models.UserDB{UserID: 1, Name: "a", Email: "a@example.com", Age: 25})
	seedUser(t, db, models.UserDB{UserID: 2, Name: "b", Email: "b@example.com", Age: 30})
	seedUser(t, db, models.UserDB{UserID: 3, Name: "c", Email: "c@example.com", Age: 48})
	seedUser(t, db, models.UserDB{UserID: 4, Name: "d", Email: "d@example.com", Age: 31})
	// user 1 has two records: the mean is taken over records, not users
	seedSpending(t, db, spend(1, 100, 2023), spend(1, 200, 2024), spend(2, 600, 2024))
	seedSpending(t, db, spend(3, 1000, 2024))
	// orphan, must not show up anywhere
	seedSpending(t, db, spend(99, 5000, 2024))

	avg, err := repo.AverageByAgeBucket(ctx, models.ClosedBucket(25, 30))
	require.NoError(t, err)
	assert.True(t, avg.Valid)
	assert.True(t, decimal.NewFromInt(300).Equal(avg.Decimal), "got %s", avg.Decimal)

	avg, err = repo.AverageByAgeBucket(ctx, models.OpenBucket(48))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(avg.Decimal), "got %s", avg.Decimal)

	// user 4 has a profile but no records
	avg, err = repo.AverageByAgeBucket(ctx, models.ClosedBucket(31, 36))
	require.NoError(t, err)
	assert.False(t, avg.Valid)
}

func TestSQLite_UserList(t *testing.T) {
	db := setupSQLite(t)
	seedUser(t, db, models.UserDB{UserID: 2, Name: "b", Email: "b@example.com", Age: 40})
	seedUser(t, db, models.UserDB{UserID: 1, Name: "a", Email: "a@example.com", Age: 20})

	users, err := NewUserReadRepository(db, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].UserID)
	assert.Equal(t, int64(2), users[1].UserID)
}

func TestSQLite_HighSpenderSave_NoOverwrite(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	repo := NewHighSpenderWriteRepository(db, nil)

	require.NoError(t, repo.Save(ctx, 5, decimal.NewFromInt(1500)))

	err := repo.Save(ctx, 5, decimal.NewFromInt(9000))
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	var stored models.HighSpenderDB
	require.NoError(t, db.Get(&stored, `SELECT user_id, total_spending FROM high_spenders WHERE user_id = 5`))
	assert.True(t, decimal.NewFromInt(1500).Equal(stored.TotalSpending), "got %s", stored.TotalSpending)
}

func TestSQLite_HighSpenderSave_Concurrent(t *testing.T) {
	db := setupSQLite(t)
	ctx := context.Background()
	repo := NewHighSpenderWriteRepository(db, nil)

	const workers = 20
	var (
		wg         sync.WaitGroup
		created    atomic.Int32
		duplicates atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Save(ctx, 7, decimal.NewFromInt(int64(2000+i)))
			switch {
			case err == nil:
				created.Add(1)
			case assert.ErrorIs(t, err, storage.ErrDuplicateKey):
				duplicates.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(workers-1), duplicates.Load())

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM high_spenders WHERE user_id = 7`))
	assert.Equal(t, 1, count)
}
