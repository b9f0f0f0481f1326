package services

//go:generate mockgen -source=promotion.go -destination=mock_promotion.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
	"github.com/sbilibin2017/gw-spending-analytics/internal/storage"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// Error variables
var (
	ErrInvalidInput   = errors.New("user_id and total_spending are required")
	ErrBelowThreshold = errors.New("total spending does not exceed the threshold")
	ErrAlreadyExists  = errors.New("user already exists in high spenders")
	ErrUnknownUser    = errors.New("user profile does not exist")
)

// ThresholdError carries the threshold a rejected promotion did not exceed.
// It matches ErrBelowThreshold.
type ThresholdError struct {
	Threshold     decimal.Decimal
	TotalSpending decimal.Decimal
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("total spending %s does not exceed the threshold of %s", e.TotalSpending, e.Threshold)
}

func (e *ThresholdError) Is(target error) bool {
	return target == ErrBelowThreshold
}

// HighSpenderWriter inserts high-spender entries.
type HighSpenderWriter interface {
	Save(ctx context.Context, userID int64, totalSpending decimal.Decimal) error // Fails with storage.ErrDuplicateKey if the user is registered
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the store work of ctx is committed.
type AfterCommitFunc func(ctx context.Context, fn func())

// PromotionService gates writes into the high-spenders registry.
type PromotionService struct {
	writer      HighSpenderWriter
	threshold   decimal.Decimal
	kafkaWriter KafkaWriter
	afterCommit AfterCommitFunc
}

// NewPromotionService creates a new PromotionService. kafkaWriter may be nil.
// Events are published through afterCommit; a nil afterCommit publishes
// right after the insert.
func NewPromotionService(
	writer HighSpenderWriter,
	threshold decimal.Decimal,
	kafkaWriter KafkaWriter,
	afterCommit AfterCommitFunc,
) *PromotionService {
	return &PromotionService{
		writer:      writer,
		threshold:   threshold,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
	}
}

// Threshold returns the total a user has to exceed.
func (s *PromotionService) Threshold() decimal.Decimal {
	return s.threshold
}

// Promote registers userID as a high spender when totalSpending is strictly
// above the threshold. An existing entry is never updated.
//
// Returns nil when the entry was created, ErrInvalidInput when a field is
// missing, a *ThresholdError (ErrBelowThreshold) when the total is too low,
// ErrAlreadyExists for a registered user and ErrUnknownUser when the store
// rejects the user reference.
func (s *PromotionService) Promote(ctx context.Context, userID *int64, totalSpending decimal.NullDecimal) error {
	if userID == nil || !totalSpending.Valid {
		return ErrInvalidInput
	}

	if !totalSpending.Decimal.GreaterThan(s.threshold) {
		return &ThresholdError{Threshold: s.threshold, TotalSpending: totalSpending.Decimal}
	}

	err := s.writer.Save(ctx, *userID, totalSpending.Decimal)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrDuplicateKey):
		logger.Log.Infow("user already promoted", "userID", *userID)
		return ErrAlreadyExists
	case errors.Is(err, storage.ErrForeignKeyViolation):
		logger.Log.Warnw("promotion for unknown user", "userID", *userID)
		return ErrUnknownUser
	default:
		logger.Log.Errorw("failed to save high spender", "userID", *userID, "totalSpending", totalSpending.Decimal, "error", err)
		return err
	}

	event := models.PromotionEvent{
		EventID:       uuid.NewString(),
		UserID:        *userID,
		TotalSpending: totalSpending.Decimal,
		Timestamp:     time.Now().Unix(),
	}
	publish := func() { s.publishPromotion(ctx, event) }
	if s.afterCommit != nil {
		s.afterCommit(ctx, publish)
	} else {
		publish()
	}

	return nil
}

// publishPromotion publishes a promotion event to Kafka.
func (s *PromotionService) publishPromotion(ctx context.Context, event models.PromotionEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal promotion event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish promotion event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Promotion event published to Kafka", "event_id", event.EventID, "userID", event.UserID)
	}
}
