package acl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jsamuelsen/quotations-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

const (
	searchAuthorsPath = "/search/authors"
	lookupOperation   = "lookup author"
)

// quotableAuthor is one entry of the quotable.io author search.
type quotableAuthor struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Bio         string `json:"bio"`
	Link        string `json:"link"`
	QuoteCount  int    `json:"quoteCount"`
}

type quotableSearch struct {
	Count   int              `json:"count"`
	Results []quotableAuthor `json:"results"`
}

// AuthorDirectory implements ports.AuthorDirectory and ports.HealthChecker against the
// quotable.io author search.
type AuthorDirectory struct {
	baseAdapter
}

// NewAuthorDirectory wraps client. Panics if client is nil.
func NewAuthorDirectory(client *clients.Client) *AuthorDirectory {
	if client == nil {
		panic("NewAuthorDirectory: client is required")
	}

	return &AuthorDirectory{baseAdapter: baseAdapter{client: client}}
}

// Lookup returns the directory entry whose name matches name case-insensitively. When the
// search has hits but none match exactly, the best-ranked hit is used.
func (d *AuthorDirectory) Lookup(ctx context.Context, name string) (*domain.AuthorProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "is required")
	}

	logger := logging.FromContext(ctx)
	logger.Log(ctx, logging.LevelTrace, "looking up author", slog.String("author", name))

	body, err := d.get(ctx, searchAuthorsPath, url.Values{"query": {name}, "limit": {"5"}}, lookupOperation, name)
	if err != nil {
		return nil, err
	}

	search, err := decodeResponse[quotableSearch](body)
	if err != nil {
		return nil, domain.NewUnavailableError(d.client.Name(), err.Error())
	}

	match := pickAuthor(search.Results, name)
	if match == nil {
		return nil, domain.NewNotFoundError(d.client.Name(), name)
	}

	return translateAuthor(match), nil
}

func pickAuthor(results []quotableAuthor, name string) *quotableAuthor {
	for i := range results {
		if strings.EqualFold(strings.TrimSpace(results[i].Name), name) {
			return &results[i]
		}
	}

	if len(results) > 0 {
		return &results[0]
	}

	return nil
}

func translateAuthor(ext *quotableAuthor) *domain.AuthorProfile {
	return &domain.AuthorProfile{
		Name:        strings.TrimSpace(ext.Name),
		Description: strings.TrimSpace(ext.Description),
		Bio:         strings.TrimSpace(ext.Bio),
		Link:        strings.TrimSpace(ext.Link),
	}
}

func (d *AuthorDirectory) Name() string { return d.client.Name() }

// Check reports the directory unavailable while its circuit is open. It does not call the
// directory, so readiness probes cannot exhaust its rate limit.
func (d *AuthorDirectory) Check(context.Context) error {
	if d.client.CircuitState() == clients.StateOpen {
		return domain.NewUnavailableError(d.client.Name(), "circuit breaker open")
	}

	return nil
}
