package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/bbp-gateway/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength caps caller-supplied trace ids; longer ones are replaced.
const maxTraceIDLength = 128

var traceIDs = utils.NewUUIDGenerator()

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := strings.TrimSpace(r.Header.Get(traceIDHeader))
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
