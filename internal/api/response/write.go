package response

import (
	"encoding/json"
	"net/http"
)

// JSON writes a JSON response. Handlers use this for snapshots, profiles,
// and score listings.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// NoContent writes a 204 No Content response, used to acknowledge input
// and session close requests
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
