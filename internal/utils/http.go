package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/aegis-vault/models"
)

// WriteJSON marshals data and writes it with statusCode and an
// "application/json" content type. A marshaling failure is answered with a
// plain 500 and returned to the caller.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes message as the single opaque {"error": message} body.
func WriteError(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
