package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/bbp-gateway/internal/app"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	ErrMalformedBody: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	ErrBodyTooLarge:  {http.StatusRequestEntityTooLarge, app.MsgRequestTooLarge},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}
}
