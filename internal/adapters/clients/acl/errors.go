package acl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/quotations-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotations-service/internal/domain"
)

// maxErrorBody bounds how much of an error response is read for a message.
const maxErrorBody = 64 << 10

// errorResponse accepts both {"error":{"code","message"}} and flat {"statusCode","message"}
// bodies; quotable uses the flat form.
type errorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
	Message string `json:"message,omitempty"`
}

func (e *errorResponse) message() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}

	return e.Message
}

// parseErrorResponse returns nil when body is empty or not a recognised error document.
func parseErrorResponse(body io.Reader) *errorResponse {
	if body == nil {
		return nil
	}

	var resp errorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxErrorBody)).Decode(&resp); err != nil {
		return nil
	}
	if resp.message() == "" && resp.Error.Code == "" {
		return nil
	}

	return &resp
}

// MapHTTPError translates a failed call into the domain error taxonomy. resp may be nil when
// clientErr is set. Circuit-open, exhausted retries, transport errors and 5xx/429 responses
// all become domain.UnavailableError, so callers can degrade uniformly.
func MapHTTPError(resp *http.Response, clientErr error, service, operation, entityID string) error {
	if clientErr != nil {
		switch {
		case errors.Is(clientErr, clients.ErrCircuitOpen):
			return domain.NewUnavailableError(service, "circuit breaker open during "+operation)
		case errors.Is(clientErr, clients.ErrMaxRetriesExceeded):
			return domain.NewUnavailableError(service, "max retries exceeded during "+operation)
		default:
			return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, clientErr))
		}
	}

	if resp == nil {
		return domain.NewUnavailableError(service, "no response received")
	}
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	message := fmt.Sprintf("%s failed with status %d", operation, resp.StatusCode)
	if parsed := parseErrorResponse(resp.Body); parsed != nil && parsed.message() != "" {
		message = parsed.message()
	}

	switch status := resp.StatusCode; {
	case status == http.StatusNotFound:
		return domain.NewNotFoundError(service, entityID)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return domain.NewForbiddenError(operation, message)
	case status == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")
	case status >= http.StatusInternalServerError:
		return domain.NewUnavailableError(service, message)
	default:
		return domain.NewValidationError("", message)
	}
}
