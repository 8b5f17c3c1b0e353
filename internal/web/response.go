package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Damoblinkz2/hnc-task-0/internal/errors"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// writeError maps a service error to its JSON error envelope and status.
func writeError(w http.ResponseWriter, err error) {
	svcErr, ok := err.(*errors.ServiceError)
	if !ok {
		svcErr = errors.NewInternal(nil)
	}

	errorObj := map[string]any{
		"code":    svcErr.Code,
		"message": svcErr.Message,
	}
	// Details are omitted for 5xx errors to avoid leaking paths or
	// backend internals
	if svcErr.Status < 500 && svcErr.Details != nil {
		errorObj["details"] = svcErr.Details
	}
	if svcErr.Status >= 500 {
		errorObj["message"] = "an internal error occurred"
	}

	writeJSON(w, svcErr.Status, map[string]any{"error": errorObj})
}
