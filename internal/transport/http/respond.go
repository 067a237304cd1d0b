package httptransport

import (
	"encoding/json"
	"net/http"

	dErrors "suraksha/pkg/domain-errors"
)

// WriteJSON writes status and a JSON body with the standard header.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteError centralizes domain error translation to HTTP responses so every
// handler emits the same JSON error envelope with a stable code.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	WriteJSON(w, dErrors.HTTPStatus(code), map[string]string{"error": string(code)})
}

// WriteRaw relays an upstream body verbatim with its original status.
func WriteRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
