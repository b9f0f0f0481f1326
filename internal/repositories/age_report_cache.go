package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
)

// ErrCacheMiss is returned when no report is cached.
var ErrCacheMiss = errors.New("age report not found in cache")

const ageReportKey = "spending:average_by_age"

// AgeReportCacheRepository caches the average-spending-by-age report in Redis
type AgeReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of the cached report
}

func NewAgeReportCacheRepository(client *redis.Client, expiration time.Duration) *AgeReportCacheRepository {
	return &AgeReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached report or ErrCacheMiss.
func (r *AgeReportCacheRepository) Get(ctx context.Context) ([]models.AgeBucketAverage, error) {
	val, err := r.client.Get(ctx, ageReportKey).Bytes()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", ageReportKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var report []models.AgeBucketAverage
	if err := json.Unmarshal(val, &report); err != nil {
		logger.Log.Infow("cache get",
			"key", ageReportKey,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", ageReportKey,
		"result", report,
	)

	return report, nil
}

// Set stores the report with the repository expiration.
func (r *AgeReportCacheRepository) Set(ctx context.Context, report []models.AgeBucketAverage) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, ageReportKey, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", ageReportKey,
		"expiration", r.exp,
		"error", err,
	)

	return err
}
