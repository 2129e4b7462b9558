package respond

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/clubledger/internal/domain"
	"github.com/GlebRadaev/clubledger/pkg/auth"
	"github.com/GlebRadaev/clubledger/pkg/logger"
	"github.com/GlebRadaev/clubledger/pkg/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Status maps a service error to the HTTP status returned to the client.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrDebtExceeded),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrMembersOnly):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err to the client. Store failures are logged and hidden.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Error("request failed", zap.Error(err))
		utils.RespondWithError(w, status, "Internal server error")
		return
	}
	utils.RespondWithError(w, status, err.Error())
}

// IDParam reads a positive integer path parameter.
func IDParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Operator reads the authenticated operator, answering 401 when it is missing.
func Operator(w http.ResponseWriter, r *http.Request) (int, bool) {
	operatorID, ok := auth.OperatorID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return operatorID, true
}
