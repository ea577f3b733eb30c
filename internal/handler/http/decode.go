package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/bbp-gateway/internal/logger"
	"github.com/MKhiriev/bbp-gateway/models"
)

// maxBodyBytes limits inbound JSON bodies.
const maxBodyBytes = 1 << 20

// decodeBody reads an optional JSON body. An empty body or a literal null
// decodes to None.
func decodeBody[T any](r *http.Request) (models.Option[T], error) {
	if r.Body == nil {
		return models.None[T](), nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return models.None[T](), fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if len(raw) > maxBodyBytes {
		return models.None[T](), ErrBodyTooLarge
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return models.None[T](), nil
	}

	var body models.Option[T]
	if err = json.Unmarshal(raw, &body); err != nil {
		return models.None[T](), fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return body, nil
}

// bindBody decodes the request body, answering the request itself when the
// body cannot be decoded. It reports false once the response is written.
func bindBody[T any](h *Handler, w http.ResponseWriter, r *http.Request) (models.Option[T], bool) {
	body, err := decodeBody[T](r)
	if err != nil {
		logger.FromContextOr(r.Context(), h.logger).Warn().Err(err).Msg("rejecting request body")
		resp := responseFromError(err)
		http.Error(w, resp.message, resp.status)
		return body, false
	}
	return body, true
}

// queryParam returns the named query parameter, None when it is missing or
// blank.
func queryParam(r *http.Request, name string) models.Option[string] {
	return models.OptionalString(r.URL.Query().Get(name))
}
