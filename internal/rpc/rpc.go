// Package rpc exposes the quote and order usecases over HTTP JSON.
package rpc

import (
	"encoding/json"
	"net/http"

	"github.com/AmadeusAI/mobidex/pkg/errors"
	"github.com/AmadeusAI/mobidex/pkg/util"
)

// response is the envelope every endpoint answers with.
type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Status: "success", Message: "success", Data: data})
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, response{Status: "error", Message: message})
}

// writeDomainError maps error codes onto HTTP statuses; anything unexpected
// is a 500 with a generic message so internals never leak to clients.
func writeDomainError(w http.ResponseWriter, err error) {
	switch errors.CodeOf(err) {
	case errors.GeneralBadRequestError, errors.InvalidOperation:
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.MissingAsset, errors.MissingOrderbook:
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// withRequestID tags every request context with a request id so log lines
// across the pipeline correlate.
func withRequestID(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get("X-Request-Id"))
		h(w, r.WithContext(ctx))
	}
}
