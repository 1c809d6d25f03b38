package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/iresident/internal/resident/service"
	"github.com/aussiebroadwan/iresident/pkg/httpx"
	"github.com/aussiebroadwan/iresident/pkg/residentsdk"
	"github.com/aussiebroadwan/iresident/pkg/slogx"
)

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, residentsdk.ErrorResponse{
		Error:            residentsdk.ErrorCodeInvalidRequest,
		ErrorDescription: description,
	})
}

// writeServiceError maps service sentinels onto status codes. notFound is the
// description used for a 404 ("User not found", ...).
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, residentsdk.ErrorResponse{
			Error:            residentsdk.ErrorCodeNotFound,
			ErrorDescription: notFound,
		})
	case errors.Is(err, service.ErrAlreadyRedeemed):
		httpx.WriteJSON(w, http.StatusBadRequest, residentsdk.ErrorResponse{
			Error:            residentsdk.ErrorCodeAlreadyRedeemed,
			ErrorDescription: "Invitation already redeemed",
		})
	case errors.Is(err, service.ErrReference):
		httpx.WriteJSON(w, http.StatusBadRequest, residentsdk.ErrorResponse{
			Error:            residentsdk.ErrorCodeInvalidReference,
			ErrorDescription: "Referenced record does not exist",
		})
	case errors.Is(err, service.ErrInvalidArgument):
		writeBadRequest(w, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError, residentsdk.ErrorResponse{
			Error:            residentsdk.ErrorCodeServerError,
			ErrorDescription: "Internal server error",
		})
	}
}
