// Package httpapi exposes the REST surface: a chi router, the middleware
// chain, and handlers delegating to the service layer. All responses share
// the `{success, message?, data?, error?}` envelope.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mockview/mockview/internal/common"
)

type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, response{Success: true, Message: message, Data: data})
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, response{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, response{Success: false, Message: message})
}

func writeInternal(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusInternalServerError, response{Success: false, Message: message, Error: err.Error()})
}

// writeServiceError maps service-layer sentinels onto the resource-specific
// not-found and forbidden messages, and everything else onto a 500 envelope.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg, forbiddenMsg, internalMsg string) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeFailure(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, common.ErrForbidden):
		writeFailure(w, http.StatusForbidden, forbiddenMsg)
	default:
		writeInternal(w, internalMsg, err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeFailure(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
