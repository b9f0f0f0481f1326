package handlers

//go:generate mockgen -source=average_spending.go -destination=mock_average_spending.go -package=handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/middlewares"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
)

// AgeSpendingReader defines the interface that the service must implement.
type AgeSpendingReader interface {
	AverageSpendingByAge(ctx context.Context) ([]models.AgeBucketAverage, error)
}

// AgeReport serializes as a JSON object keyed by bucket label, keys in
// report order. Labels are written unescaped; json.Marshal escapes them again
// unless the caller's encoder has HTML escaping off, as writeJSON does.
type AgeReport []models.AgeBucketAverage

func (rep AgeReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	buf.WriteByte('{')
	for i, entry := range rep {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(entry.Label); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		buf.WriteString(entry.Average.String())
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// NewAverageSpendingByAgeHandler returns an HTTP handler for the age report.
// @Summary Average spending by age range
// @Description Mean spending per record for the age ranges 18-24, 25-30, 31-36, 37-47 and >48. Empty ranges report 0.
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]number "Average spending keyed by age range"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /average_spending_by_age [get]
func NewAverageSpendingByAgeHandler(svc AgeSpendingReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.AverageSpendingByAge(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to compute age report",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, AgeReport(report))
	}
}
