package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes a JSON error body. Middleware cannot import the handler
// package, so this mirrors its writeJSON.
func writeError(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
