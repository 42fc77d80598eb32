package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"
)

// Echo payload errors.
var (
	ErrMalformedJSON = errors.New("request body is not valid JSON")
	ErrTrailingData  = errors.New("request body contains data after the JSON value")
)

// Echo outcomes reported to metrics.
const (
	echoAccepted  = "accepted"
	echoMalformed = "malformed"
	echoTooLarge  = "too_large"
)

// EchoResponse is the body of POST /api/echo.
type EchoResponse struct {
	Received  any    `json:"received"`
	Timestamp string `json:"timestamp"`
}

// Echo returns the request body unchanged.
// An empty body echoes as null; anything that is not a single JSON value is a 400.
//
// POST /api/echo
func (h *Handler) Echo(w http.ResponseWriter, r *http.Request) {
	received, err := decodeJSONBody(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.metrics.IncEchoPayload(echoTooLarge)
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error:   "Payload Too Large",
				Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit),
			})
			return
		}

		h.metrics.IncEchoPayload(echoMalformed)
		h.logger.Debug("rejected echo payload", slog.String("reason", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: err.Error(),
		})
		return
	}

	h.metrics.IncEchoPayload(echoAccepted)
	writeJSON(w, http.StatusOK, EchoResponse{
		Received:  received,
		Timestamp: h.timestamp(),
	})
}

// decodeJSONBody parses body as exactly one JSON value. Numbers are kept as
// json.Number so they are re-emitted with the caller's precision.
func decodeJSONBody(body io.Reader) (any, error) {
	if body == nil {
		return nil, nil
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrMalformedJSON)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}

	return v, nil
}
