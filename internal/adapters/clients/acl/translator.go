package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jsamuelsen/quotations-service/internal/adapters/clients"
)

// baseAdapter holds what every directory adapter needs: the resilient client and the name
// used in domain errors.
type baseAdapter struct {
	client *clients.Client
}

// get performs a GET and returns the body of a 2xx response. Every failure is already a
// domain error.
func (a *baseAdapter) get(ctx context.Context, path string, query url.Values, operation, entityID string) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path, query)
	if err != nil {
		return nil, MapHTTPError(nil, err, a.client.Name(), operation, entityID)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()
		return nil, MapHTTPError(resp, nil, a.client.Name(), operation, entityID)
	}

	return resp.Body, nil
}

// decodeResponse decodes a JSON body into T and closes it.
func decodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, fmt.Errorf("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var out T
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &out, nil
}
