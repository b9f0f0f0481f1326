package services

//go:generate mockgen -source=analytics.go -destination=mock_analytics.go -package=services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
	"github.com/shopspring/decimal"
)

// ErrNoSpendingData is returned when a user has no spending records.
var ErrNoSpendingData = errors.New("no spending data found for the user")

// SpendingReader defines the aggregate reads over spending records.
type SpendingReader interface {
	SumByUserID(ctx context.Context, userID int64) (decimal.NullDecimal, error)                   // NULL when the user has no records
	AverageByAgeBucket(ctx context.Context, bucket models.AgeBucket) (decimal.NullDecimal, error) // NULL when no record matches
}

// AgeReportCache stores a computed age report.
type AgeReportCache interface {
	Get(ctx context.Context) ([]models.AgeBucketAverage, error)      // Returns the cached report
	Set(ctx context.Context, report []models.AgeBucketAverage) error // Stores the report
}

// AnalyticsService computes the spending aggregates. It keeps no state
// between calls apart from the optional report cache.
type AnalyticsService struct {
	reader  SpendingReader
	cache   AgeReportCache
	buckets []models.AgeBucket
}

// NewAnalyticsService creates a new AnalyticsService. cache may be nil.
func NewAnalyticsService(reader SpendingReader, cache AgeReportCache, buckets []models.AgeBucket) *AnalyticsService {
	return &AnalyticsService{
		reader:  reader,
		cache:   cache,
		buckets: buckets,
	}
}

// TotalSpent returns the sum of all spending records of a user.
func (s *AnalyticsService) TotalSpent(ctx context.Context, userID int64) (decimal.Decimal, error) {
	total, err := s.reader.SumByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to sum spending", "userID", userID, "error", err)
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, ErrNoSpendingData
	}
	return total.Decimal, nil
}

// AverageSpendingByAge returns the mean spending per record for every age
// bucket, in bucket order. Buckets without records report zero.
func (s *AnalyticsService) AverageSpendingByAge(ctx context.Context) ([]models.AgeBucketAverage, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx)
		if err == nil && s.matchesBuckets(report) {
			return report, nil
		}
		if err != nil {
			logger.Log.Debugw("age report cache miss", "error", err)
		}
	}

	report := make([]models.AgeBucketAverage, 0, len(s.buckets))
	for _, bucket := range s.buckets {
		avg, err := s.reader.AverageByAgeBucket(ctx, bucket)
		if err != nil {
			logger.Log.Errorw("failed to average spending", "bucket", bucket.Label(), "error", err)
			return nil, err
		}

		entry := models.AgeBucketAverage{Label: bucket.Label(), Average: decimal.Zero}
		if avg.Valid {
			entry.Average = avg.Decimal
		}
		report = append(report, entry)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			logger.Log.Errorw("failed to cache age report", "error", err)
		}
	}

	return report, nil
}

// matchesBuckets guards against a cached report built from another bucket list.
func (s *AnalyticsService) matchesBuckets(report []models.AgeBucketAverage) bool {
	if len(report) != len(s.buckets) {
		return false
	}
	for i, bucket := range s.buckets {
		if report[i].Label != bucket.Label() {
			return false
		}
	}
	return true
}
