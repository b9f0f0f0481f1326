package handlers

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-spending-analytics/internal/logger"
	"github.com/sbilibin2017/gw-spending-analytics/internal/middlewares"
	"github.com/sbilibin2017/gw-spending-analytics/internal/models"
)

// UserLister defines the interface that the repository must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewAllUsersHandler returns an HTTP handler listing every user profile.
// @Summary List users
// @Description Returns all user profiles
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "User profiles"
// @Failure 500 {object} handlers.MessageResponse "Internal server error"
// @Router /all_users [get]
func NewAllUsersHandler(users UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := users.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list users",
				"request_id", middlewares.RequestIDFromContext(r.Context()), "error", err)
			writeMessage(w, http.StatusInternalServerError, msgInternalError)
			return
		}
		if list == nil {
			list = []models.UserDB{}
		}

		writeJSON(w, http.StatusOK, list)
	}
}
