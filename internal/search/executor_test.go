package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const sampleEnvelope = `{
	"success": true,
	"data": [
		{
			"service": "profile",
			"data": [
				{"platform": "instagram", "data": {"username": "catlover", "followers": 1200}},
				{"platform": "twitter", "data": {"username": "ghost", "followers": 0}},
				{"platform": "tiktok", "data": {"username": "avataronly", "avatar": "https://cdn.example.com/a.jpg"}},
				{"platform": "", "data": {"username": "noplatform", "followers": 5}},
				{"platform": "instagram"}
			]
		},
		{
			"service": "hashtag",
			"data": [
				{"platform": "instagram", "data": {"tag": "cats", "posts": 500}},
				{"platform": "twitter", "data": {"tag": "", "posts": 10}},
				{"platform": "tiktok", "data": {"tag": "zeroposts", "posts": 0}}
			]
		}
	]
}`

func newLookupServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Executor) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewExecutor(server.URL, 2*time.Second)
}

func TestExecuteFiltersIncompleteEntries(t *testing.T) {
	_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleEnvelope))
	})

	items, err := executor.Execute(context.Background(), "cats", "")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	// Valid: catlover (followers>0), avataronly (avatar set), #cats (posts>0).
	// Dropped: ghost (no followers, no avatar), empty platform, missing data,
	// empty tag, zero posts.
	if len(items) != 3 {
		t.Fatalf("expected 3 valid items, got %d: %+v", len(items), items)
	}

	ids := map[string]bool{}
	for _, item := range items {
		ids[item.Identifier()] = true
	}
	for _, want := range []string{"catlover", "avataronly", "cats"} {
		if !ids[want] {
			t.Errorf("expected %q in results", want)
		}
	}
}

func TestExecuteSendsTrimmedQuery(t *testing.T) {
	var gotKey string
	_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"success": true, "data": []}`))
	})

	if _, err := executor.Execute(context.Background(), "  cats  ", ""); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if gotKey != "cats" {
		t.Errorf("expected trimmed query %q, got %q", "cats", gotKey)
	}
}

func TestExecuteCategoryFilter(t *testing.T) {
	_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleEnvelope))
	})

	items, err := executor.Execute(context.Background(), "cats", CategoryHashtag)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("expected 1 hashtag item, got %d", len(items))
	}
	if items[0].Category != CategoryHashtag || items[0].Identifier() != "cats" {
		t.Errorf("unexpected item: %+v", items[0])
	}
}

func TestExecuteSoftFailureReturnsEmpty(t *testing.T) {
	_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	})

	items, err := executor.Execute(context.Background(), "nothing", "")
	if err != nil {
		t.Fatalf("success=false must not be an error, got %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %d items", len(items))
	}
}

func TestExecuteErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited},
		{"endpoint gone", http.StatusNotFound, ErrServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := executor.Execute(context.Background(), "cats", "")
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestExecuteGenericServerError(t *testing.T) {
	_, executor := newLookupServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := executor.Execute(context.Background(), "cats", "")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrServiceUnavailable) || errors.Is(err, ErrTimeout) {
		t.Errorf("a 500 should be a generic failure, got %v", err)
	}
}

func TestExecuteTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	t.Cleanup(server.Close)

	executor := NewExecutor(server.URL, 50*time.Millisecond)
	_, err := executor.Execute(context.Background(), "cats", "")
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("expected ErrTimeout, got %v", err)
	}
}
