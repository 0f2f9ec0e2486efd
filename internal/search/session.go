package search

import (
	"context"
	"strings"
	"sync"
	"time"
)

// State is the session's position in the input -> dropdown pipeline.
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateLoading
	StateResolved
	StateErrored
)

const (
	// DefaultDebounceDelay is the quiet period after the last keystroke
	// before a lookup request is issued.
	DefaultDebounceDelay = 300 * time.Millisecond

	debounceKey = "query"
)

// QueryExecutor is what the session needs from the lookup client.
type QueryExecutor interface {
	Execute(ctx context.Context, query string, filter Category) ([]ResultItem, error)
}

// FallbackAction is the per-platform affordance shown when a query yields no
// results for the active category. Disabled platforms stay visible so the
// row of actions keeps a stable shape.
type FallbackAction struct {
	Platform Platform `json:"platform"`
	Disabled bool     `json:"disabled"`
	URL      string   `json:"url"`
}

// SessionConfig configures one widget instance.
type SessionConfig struct {
	Executor      QueryExecutor
	DebounceDelay time.Duration // 0 means DefaultDebounceDelay

	// DisabledFallbacks lists platforms whose fallback action renders but
	// cannot be activated (no live search support).
	DisabledFallbacks []Platform

	// RestoreFocus, when set, is called after results commit if the input
	// was focused when the request went out and the query is still
	// non-empty. Async rendering can steal focus from an actively typing
	// user; this hands it back.
	RestoreFocus func()
}

// Session owns the state machine behind one search widget: input text, the
// active category tab, dropdown visibility flags, and the result set of the
// latest non-superseded request.
//
// Responses are ordered by request id, not arrival: every dispatched request
// carries the id current at dispatch time, and a response only commits if
// its id still matches. In-flight requests are never cancelled when
// superseded; they complete and are discarded.
type Session struct {
	mu sync.Mutex

	exec     QueryExecutor
	debounce *Debouncer
	delay    time.Duration

	disabledFallbacks map[Platform]bool
	restoreFocus      func()

	queryText      string
	activeCategory Category
	requestID      uint64
	issued         bool // a request has been dispatched for the current query
	results        []ResultItem
	state          State
	lastErr        error

	focused  bool
	hovering bool
}

func NewSession(cfg SessionConfig) *Session {
	delay := cfg.DebounceDelay
	if delay <= 0 {
		delay = DefaultDebounceDelay
	}

	disabled := make(map[Platform]bool, len(cfg.DisabledFallbacks))
	for _, p := range cfg.DisabledFallbacks {
		disabled[p] = true
	}

	return &Session{
		exec:              cfg.Executor,
		debounce:          NewDebouncer(),
		delay:             delay,
		disabledFallbacks: disabled,
		restoreFocus:      cfg.RestoreFocus,
		activeCategory:    CategoryProfile,
		state:             StateIdle,
	}
}

// SetQuery records a keystroke. An empty or whitespace query clears the
// session synchronously and never enqueues a network call; anything else
// arms (or re-arms) the debounce timer.
func (s *Session) SetQuery(query string) {
	trimmed := strings.TrimSpace(query)

	s.mu.Lock()
	s.queryText = query

	if trimmed == "" {
		s.debounce.Cancel(debounceKey)
		// Bumping the id here invalidates any in-flight response so a late
		// arrival cannot resurrect results for a cleared query.
		s.requestID++
		s.results = nil
		s.lastErr = nil
		s.issued = false
		s.state = StateIdle
		s.mu.Unlock()
		return
	}

	s.state = StateDebouncing
	s.issued = false
	s.mu.Unlock()

	s.debounce.Schedule(debounceKey, s.delay, func() {
		s.dispatch()
	})
}

// dispatch issues the lookup request for the current query. The request runs
// without a category filter: the tab switch must re-partition fetched
// results, not refetch.
func (s *Session) dispatch() {
	s.mu.Lock()
	trimmed := strings.TrimSpace(s.queryText)
	if trimmed == "" {
		s.mu.Unlock()
		return
	}

	s.requestID++
	id := s.requestID
	s.issued = true
	s.state = StateLoading
	wasFocused := s.focused
	s.mu.Unlock()

	go func() {
		items, err := s.exec.Execute(context.Background(), trimmed, "")

		s.mu.Lock()
		if id != s.requestID {
			// Stale: a newer request (or a clear) superseded this one while
			// it was in flight. Discard silently, error or not.
			s.mu.Unlock()
			return
		}

		if err != nil {
			s.state = StateErrored
			s.lastErr = err
			s.results = nil
		} else {
			s.state = StateResolved
			s.lastErr = nil
			s.results = items
		}

		restore := err == nil && wasFocused && strings.TrimSpace(s.queryText) != ""
		cb := s.restoreFocus
		s.mu.Unlock()

		if restore && cb != nil {
			cb()
		}
	}()
}

// SetActiveCategory switches the visible tab. Already-fetched results are
// re-partitioned; no new request goes out unless none was ever issued for
// the current query.
func (s *Session) SetActiveCategory(category Category) {
	if !category.IsValid() {
		return
	}

	s.mu.Lock()
	if category == s.activeCategory {
		s.mu.Unlock()
		return
	}
	s.activeCategory = category
	needsFetch := !s.issued && strings.TrimSpace(s.queryText) != "" &&
		s.state != StateLoading && s.state != StateDebouncing
	s.mu.Unlock()

	if needsFetch {
		s.dispatch()
	}
}

func (s *Session) SetFocused(focused bool) {
	s.mu.Lock()
	s.focused = focused
	s.mu.Unlock()
}

func (s *Session) SetHovering(hovering bool) {
	s.mu.Lock()
	s.hovering = hovering
	s.mu.Unlock()
}

// IsOpen derives dropdown visibility. "Has data" and "should render" are
// deliberately decoupled: blurring the input hides in-flight results without
// discarding them.
func (s *Session) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.TrimSpace(s.queryText) != "" &&
		(s.focused || s.hovering) &&
		s.state != StateIdle
}

// Results returns the fetched items belonging to the active category, in
// source order.
func (s *Session) Results() []ResultItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Partition(s.results, s.activeCategory)
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queryText
}

func (s *Session) ActiveCategory() Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeCategory
}

// Select closes the dropdown and returns the navigation target for the
// chosen item. The host application decides what to do with the URL.
func (s *Session) Select(item ResultItem) string {
	s.mu.Lock()
	s.focused = false
	s.hovering = false
	s.mu.Unlock()
	return BuildSearchURL(item.Platform, item.Category, item.Identifier())
}

// FallbackActions returns one action per supported platform when a resolved
// non-empty query has zero visible results. Rather than failing closed, the
// user can still jump to a direct platform search.
func (s *Session) FallbackActions() []FallbackAction {
	s.mu.Lock()
	defer s.mu.Unlock()

	trimmed := strings.TrimSpace(s.queryText)
	if trimmed == "" || s.state != StateResolved {
		return nil
	}
	if len(Partition(s.results, s.activeCategory)) > 0 {
		return nil
	}

	actions := make([]FallbackAction, 0, len(Platforms()))
	for _, p := range Platforms() {
		actions = append(actions, FallbackAction{
			Platform: p,
			Disabled: s.disabledFallbacks[p],
			URL:      BuildSearchURL(p, s.activeCategory, trimmed),
		})
	}
	return actions
}

// Close releases the session's timer resources.
func (s *Session) Close() {
	s.debounce.Stop()
}
