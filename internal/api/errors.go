package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error describes a completed HTTP response with a non-2xx status.
// Transport-level failures (DNS, refused connections) are never wrapped in
// this type; they propagate as the underlying *url.Error.
type Error struct {
	// Message is a short human-readable description of the failing call.
	Message string
	// Status is the HTTP status code of the response.
	Status int
	// Details holds the response body when it was valid JSON, nil otherwise.
	Details json.RawMessage
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// AsError unwraps err into an *Error when the failure originated from a
// non-2xx upstream response.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// ErrorMessage extracts a display message from any facade failure: the
// upstream "error" or "message" field when one exists, the wrapped message
// otherwise, and a generic fallback for everything else.
func ErrorMessage(err error, fallback string) string {
	apiErr, ok := AsError(err)
	if !ok {
		if err != nil {
			return err.Error()
		}
		return fallback
	}
	if len(apiErr.Details) > 0 {
		var body struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(apiErr.Details, &body); jsonErr == nil {
			if body.Error != "" {
				return body.Error
			}
			if body.Message != "" {
				return body.Message
			}
		}
	}
	return apiErr.Message
}
