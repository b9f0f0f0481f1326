package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-spending-analytics/internal/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalSpentHandler(t *testing.T) {
	tests := []struct {
		name               string
		path               string
		setupMocks         func(m *MockTotalSpentReader)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name: "total spending",
			path: "/total_spent/5",
			setupMocks: func(m *MockTotalSpentReader) {
				m.EXPECT().TotalSpent(gomock.Any(), int64(5)).Return(decimal.RequireFromString("500.50"), nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"user_id":5,"total_spending":500.5}`,
		},
		{
			name: "zero user id",
			path: "/total_spent/0",
			setupMocks: func(m *MockTotalSpentReader) {
				m.EXPECT().TotalSpent(gomock.Any(), int64(0)).Return(decimal.Zero, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       `{"user_id":0,"total_spending":0}`,
		},
		{
			name: "no spending data",
			path: "/total_spent/42",
			setupMocks: func(m *MockTotalSpentReader) {
				m.EXPECT().TotalSpent(gomock.Any(), int64(42)).Return(decimal.Zero, services.ErrNoSpendingData)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"No spending data found for the user."}`,
		},
		{
			name:               "non numeric id does not match the route",
			path:               "/total_spent/abc",
			setupMocks:         func(m *MockTotalSpentReader) {},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:               "id overflowing int64",
			path:               "/total_spent/99999999999999999999",
			setupMocks:         func(m *MockTotalSpentReader) {},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       `{"message":"No spending data found for the user."}`,
		},
		{
			name: "internal error",
			path: "/total_spent/1",
			setupMocks: func(m *MockTotalSpentReader) {
				m.EXPECT().TotalSpent(gomock.Any(), int64(1)).Return(decimal.Zero, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedBody:       `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockTotalSpentReader(ctrl)
			tt.setupMocks(mockReader)

			r := chi.NewRouter()
			r.Get("/total_spent/{user_id:[0-9]+}", NewTotalSpentHandler(mockReader))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestTotalSpentResponse_NumberEncoding(t *testing.T) {
	data, err := json.Marshal(TotalSpentResponse{UserID: 1, TotalSpending: amount(decimal.RequireFromString("0.10"))})
	assert.NoError(t, err)
	assert.Equal(t, `{"user_id":1,"total_spending":0.1}`, string(data))
}
