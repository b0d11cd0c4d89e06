// Package search keeps approved quotations in a Meilisearch index.
//
// The index is an accelerator, not a source of truth: while Meilisearch is unreachable every
// call returns domain.ErrUnavailable and the catalog falls back to the repository search.
package search

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/config"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

const serviceName = "meilisearch"

var (
	filterableAttributes = []string{"status", "author_id", "source_type", "tags"}
	searchableAttributes = []string{"text", "author_name", "source_title", "tags"}
)

// document is the indexed projection of a quotation.
type document struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	AuthorID    string   `json:"author_id"`
	AuthorName  string   `json:"author_name"`
	SourceID    string   `json:"source_id"`
	SourceTitle string   `json:"source_title"`
	SourceType  string   `json:"source_type"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	SubmittedAt int64    `json:"submitted_at"`
}

func toDocument(q *domain.Quotation) document {
	return document{
		ID:          q.ID,
		Text:        q.Text,
		AuthorID:    q.Author.ID,
		AuthorName:  q.Author.Name,
		SourceID:    q.Source.ID,
		SourceTitle: q.Source.Title,
		SourceType:  string(q.Source.Type),
		Tags:        q.Tags,
		Status:      string(q.Status),
		SubmittedAt: q.SubmittedAt.Unix(),
	}
}

// Meili implements ports.QuotationIndex and ports.HealthChecker.
type Meili struct {
	client   meili.ServiceManager
	uid      string
	interval time.Duration
	logger   *slog.Logger

	healthy atomic.Bool
	done    chan struct{}
	stop    sync.Once
	wg      sync.WaitGroup
}

// NewMeili connects to the configured instance and starts the background health monitor.
// An unreachable instance is not an error: the monitor configures the index once it recovers.
func NewMeili(cfg *config.SearchConfig) *Meili {
	client := meili.New(cfg.URL, meili.WithAPIKey(cfg.APIKey))
	return newMeili(client, cfg.Index, cfg.HealthInterval)
}

func newMeili(client meili.ServiceManager, uid string, interval time.Duration) *Meili {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	m := &Meili{
		client:   client,
		uid:      uid,
		interval: interval,
		logger:   logging.FromContext(context.Background()).With(slog.String("component", "search")),
		done:     make(chan struct{}),
	}

	if _, err := client.Health(); err != nil {
		m.logger.Warn("meilisearch unavailable", slog.Any("error", err))
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	m.wg.Go(m.healthLoop)

	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{Uid: m.uid, PrimaryKey: "id"}); err != nil {
		m.logger.Debug("create index (may already exist)", slog.String("index", m.uid), slog.Any("error", err))
	}

	index := m.client.Index(m.uid)

	filterable := make([]interface{}, len(filterableAttributes))
	for i, v := range filterableAttributes {
		filterable[i] = v
	}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		m.logger.Warn("update filterable attributes", slog.String("index", m.uid), slog.Any("error", err))
	}

	searchable := append([]string(nil), searchableAttributes...)
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		m.logger.Warn("update searchable attributes", slog.String("index", m.uid), slog.Any("error", err))
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Swap(err == nil)
			switch {
			case err == nil && !wasHealthy:
				m.logger.Info("meilisearch recovered, reconfiguring index")
				m.configureIndex()
			case err != nil && wasHealthy:
				m.logger.Warn("meilisearch became unavailable", slog.Any("error", err))
			}
		}
	}
}

// Close stops the health monitor and waits for it to exit.
func (m *Meili) Close() {
	m.stop.Do(func() { close(m.done) })
	m.wg.Wait()
}

// Healthy reports the last observed state.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

func (m *Meili) Name() string { return serviceName }

func (m *Meili) Check(context.Context) error {
	if !m.healthy.Load() {
		return domain.NewUnavailableError(serviceName, "health check failing")
	}
	return nil
}

func (m *Meili) Index(_ context.Context, q *domain.Quotation) error {
	if !m.healthy.Load() {
		return domain.NewUnavailableError(serviceName, "index unhealthy")
	}

	if _, err := m.client.Index(m.uid).AddDocuments([]document{toDocument(q)}, nil); err != nil {
		return m.fail(err)
	}

	return nil
}

func (m *Meili) Remove(_ context.Context, id string) error {
	if !m.healthy.Load() {
		return domain.NewUnavailableError(serviceName, "index unhealthy")
	}

	if _, err := m.client.Index(m.uid).DeleteDocument(id, nil); err != nil {
		return m.fail(err)
	}

	return nil
}

// Search returns matching quotation ids in relevance order.
func (m *Meili) Search(_ context.Context, query string, page domain.PageRequest) ([]string, int, error) {
	if !m.healthy.Load() {
		return nil, 0, domain.NewUnavailableError(serviceName, "index unhealthy")
	}

	page = page.Normalize()
	resp, err := m.client.Index(m.uid).Search(query, &meili.SearchRequest{
		Limit:                int64(page.PageSize),
		Offset:               int64(page.Offset()),
		AttributesToRetrieve: []string{"id"},
		Filter:               `status = "approved"`,
	})
	if err != nil {
		return nil, 0, m.fail(err)
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if id := decodeString(hit, "id"); id != "" {
			ids = append(ids, id)
		}
	}

	return ids, int(resp.EstimatedTotalHits), nil
}

// fail marks the index unhealthy until the monitor sees it recover.
func (m *Meili) fail(err error) error {
	m.healthy.Store(false)
	return domain.NewUnavailableError(serviceName, err.Error())
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}
