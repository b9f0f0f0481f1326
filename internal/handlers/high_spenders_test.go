package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-spending-analytics/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// expectPromote checks the decoded arguments handed to the service.
func expectPromote(t *testing.T, wantUserID *int64, wantTotal string, ret error) func(context.Context, *int64, decimal.NullDecimal) error {
	return func(_ context.Context, userID *int64, total decimal.NullDecimal) error {
		if wantUserID == nil {
			assert.Nil(t, userID)
		} else if assert.NotNil(t, userID) {
			assert.Equal(t, *wantUserID, *userID)
		}
		if wantTotal == "" {
			assert.False(t, total.Valid)
		} else {
			assert.True(t, total.Valid)
			assert.Equal(t, wantTotal, total.Decimal.String())
		}
		return ret
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestWriteHighSpendersHandler(t *testing.T) {
	tests := []struct {
		name               string
		body               string
		setupMocks         func(t *testing.T, m *MockHighSpenderPromoter)
		expectedStatusCode int
		expectedMessage    string
	}{
		{
			name: "created",
			body: `{"user_id": 5, "total_spending": 1200}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(expectPromote(t, int64Ptr(5), "1200", nil))
			},
			expectedStatusCode: http.StatusCreated,
			expectedMessage:    "User data successfully inserted into high_spenders.",
		},
		{
			name:               "quoted total is rejected",
			body:               `{"user_id": 5, "total_spending": "1200.75"}`,
			setupMocks:         func(t *testing.T, m *MockHighSpenderPromoter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Invalid data format. Please provide user_id and total_spending.",
		},
		{
			name: "fractional total",
			body: `{"user_id": 5, "total_spending": 1200.75}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(expectPromote(t, int64Ptr(5), "1200.75", nil))
			},
			expectedStatusCode: http.StatusCreated,
			expectedMessage:    "User data successfully inserted into high_spenders.",
		},
		{
			name: "missing user_id is passed as absent",
			body: `{"total_spending": 1500}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(expectPromote(t, nil, "1500", services.ErrInvalidInput))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Invalid data format. Please provide user_id and total_spending.",
		},
		{
			name: "null total_spending is passed as absent",
			body: `{"user_id": 0, "total_spending": null}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(expectPromote(t, int64Ptr(0), "", services.ErrInvalidInput))
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Invalid data format. Please provide user_id and total_spending.",
		},
		{
			name:               "malformed json",
			body:               `{"user_id": `,
			setupMocks:         func(t *testing.T, m *MockHighSpenderPromoter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Invalid data format. Please provide user_id and total_spending.",
		},
		{
			name:               "non integer user_id",
			body:               `{"user_id": "five", "total_spending": 1500}`,
			setupMocks:         func(t *testing.T, m *MockHighSpenderPromoter) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "Invalid data format. Please provide user_id and total_spending.",
		},
		{
			name: "below threshold",
			body: `{"user_id": 5, "total_spending": 1000}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&services.ThresholdError{Threshold: decimal.NewFromInt(1000), TotalSpending: decimal.NewFromInt(1000)})
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedMessage:    "User spending does not meet the threshold of $1000.",
		},
		{
			name: "already exists",
			body: `{"user_id": 5, "total_spending": 1300}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).Return(services.ErrAlreadyExists)
			},
			expectedStatusCode: http.StatusConflict,
			expectedMessage:    "User already exists in high_spenders.",
		},
		{
			name: "unknown user",
			body: `{"user_id": 404, "total_spending": 1300}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).Return(services.ErrUnknownUser)
			},
			expectedStatusCode: http.StatusConflict,
			expectedMessage:    "User profile does not exist.",
		},
		{
			name: "internal error",
			body: `{"user_id": 5, "total_spending": 1300}`,
			setupMocks: func(t *testing.T, m *MockHighSpenderPromoter) {
				m.EXPECT().Promote(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedMessage:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPromoter := NewMockHighSpenderPromoter(ctrl)
			tt.setupMocks(t, mockPromoter)

			req := httptest.NewRequest(http.MethodPost, "/write_high_spenders", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			NewWriteHighSpendersHandler(mockPromoter).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp MessageResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestNumericAmount_UnmarshalJSON(t *testing.T) {
	var req HighSpenderRequest

	assert.NoError(t, json.Unmarshal([]byte(`{"total_spending": 1500.5}`), &req))
	assert.True(t, req.TotalSpending.Valid)
	assert.Equal(t, "1500.5", req.TotalSpending.Decimal.String())

	req = HighSpenderRequest{}
	assert.NoError(t, json.Unmarshal([]byte(`{"total_spending": null}`), &req))
	assert.False(t, req.TotalSpending.Valid)

	req = HighSpenderRequest{}
	assert.Error(t, json.Unmarshal([]byte(`{"total_spending": "1500"}`), &req))
}
