package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrRateLimited        = errors.New("lookup API rate limit exceeded")
	ErrServiceUnavailable = errors.New("lookup API endpoint unavailable")
	ErrTimeout            = errors.New("lookup API request timed out")
)

// lookup API envelope: success flag plus one block per service category,
// each holding per-platform entries.
type lookupEnvelope struct {
	Success bool           `json:"success"`
	Data    []serviceBlock `json:"data"`
}

type serviceBlock struct {
	Service string          `json:"service"`
	Data    []platformEntry `json:"data"`
}

type platformEntry struct {
	Platform string          `json:"platform"`
	Data     json.RawMessage `json:"data"`
}

// Executor queries the external lookup API and normalizes its responses into
// ResultItems. Incomplete entries are dropped before they ever reach a
// caller; a well-formed "no data" envelope is an empty slice, not an error.
type Executor struct {
	baseURL string
	client  *http.Client
}

func NewExecutor(baseURL string, timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Executor{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Execute sends the trimmed query and returns every displayable item. An
// empty filter keeps both categories; CategoryProfile or CategoryHashtag
// keeps only that one. Errors follow the taxonomy: 429 -> ErrRateLimited,
// 404 -> ErrServiceUnavailable, client timeout -> ErrTimeout, anything else
// is a wrapped generic failure.
func (e *Executor) Execute(ctx context.Context, query string, filter Category) ([]ResultItem, error) {
	endpoint := fmt.Sprintf("%s/check-data?key=%s", e.baseURL, url.QueryEscape(strings.TrimSpace(query)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrServiceUnavailable
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("search request failed: lookup API returned status %d", resp.StatusCode)
	}

	var envelope lookupEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if !envelope.Success {
		// Soft failure: the API answered but has nothing for this query.
		log.Printf("lookup API returned success=false for query %q", query)
		return []ResultItem{}, nil
	}

	return normalize(envelope, filter), nil
}

func normalize(envelope lookupEnvelope, filter Category) []ResultItem {
	items := make([]ResultItem, 0)

	for _, block := range envelope.Data {
		category := Category(block.Service)
		if !category.IsValid() {
			continue
		}
		if filter != "" && category != filter {
			continue
		}

		for _, entry := range block.Data {
			platform := Platform(entry.Platform)
			if !platform.IsValid() || len(entry.Data) == 0 {
				continue
			}

			item := ResultItem{Category: category, Platform: platform}
			switch category {
			case CategoryProfile:
				var payload ProfilePayload
				if err := json.Unmarshal(entry.Data, &payload); err != nil {
					continue
				}
				item.Profile = &payload
			case CategoryHashtag:
				var payload HashtagPayload
				if err := json.Unmarshal(entry.Data, &payload); err != nil {
					continue
				}
				item.Hashtag = &payload
			}

			if !item.Displayable() {
				continue
			}
			items = append(items, item)
		}
	}

	return items
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
