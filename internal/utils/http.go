package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every JSON response body.
const ContentTypeJSON = "application/json"

// WriteJSON encodes data as the complete response body with the given status.
//
// The value is written as is: scalars such as false or a bare string are
// valid bodies, and a nil slice encodes as null. When encoding fails nothing
// but a 500 reaches the client, and the encoding error is returned so the
// caller can log it.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding response body: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
