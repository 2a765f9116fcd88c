package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"marinelle/pkg/config"
	"marinelle/pkg/models"
)

const (
	ScrapePath = "/api/scrape"

	// FetchFailedMessage is reported for every non-2xx backend response.
	FetchFailedMessage = "Errore durante l'import dei contenuti"

	maxContentBytes = 8 << 20
)

var (
	ErrAlreadyMounted = errors.New("content loader already mounted")
	ErrTornDown       = errors.New("content loader torn down")
)

// FetchError is returned when the backend answers with a non-success status.
type FetchError struct {
	StatusCode int
}

func (e *FetchError) Error() string {
	return FetchFailedMessage
}

// ScrapeURL returns the content endpoint for a backend origin.
func ScrapeURL(baseURL string) string {
	if baseURL == "" {
		baseURL = config.DefaultBackendURL
	}
	return strings.TrimRight(baseURL, "/") + ScrapePath
}

type LoaderOption func(*ContentLoader)

func WithHTTPClient(client *http.Client) LoaderOption {
	return func(l *ContentLoader) {
		if client != nil {
			l.client = client
		}
	}
}

// WithStateHook registers fn to observe every state write. fn runs while the
// loader holds its lock and must not call back into the loader.
func WithStateHook(fn func(models.LoadState)) LoaderOption {
	return func(l *ContentLoader) {
		l.onState = fn
	}
}

// ContentLoader fetches the page content once per mount. Teardown cancels an
// outstanding request; after Teardown returns the state is never written again.
type ContentLoader struct {
	endpoint string
	client   *http.Client
	onState  func(models.LoadState)

	mu       sync.Mutex
	state    models.LoadState
	cancel   context.CancelFunc
	torndown bool
	done     chan struct{}
}

func NewContentLoader(baseURL string, opts ...LoaderOption) *ContentLoader {
	l := &ContentLoader{
		endpoint: ScrapeURL(baseURL),
		client:   http.DefaultClient,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *ContentLoader) Endpoint() string {
	return l.endpoint
}

// State returns a snapshot of the current load state.
func (l *ContentLoader) State() models.LoadState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Done is closed when the mounted load has concluded.
func (l *ContentLoader) Done() <-chan struct{} {
	return l.done
}

// Mount marks the state as loading and starts the fetch in the background.
// The fetch is cancelled when ctx is cancelled or on Teardown.
func (l *ContentLoader) Mount(ctx context.Context) error {
	loadCtx, cancel := context.WithCancel(ctx)

	l.mu.Lock()
	if l.torndown {
		l.mu.Unlock()
		cancel()
		return ErrTornDown
	}
	if l.cancel != nil {
		l.mu.Unlock()
		cancel()
		return ErrAlreadyMounted
	}
	l.cancel = cancel
	l.mu.Unlock()

	l.update(func(s *models.LoadState) {
		s.Status = models.StatusLoading
		s.Error = ""
	})

	go func() {
		defer close(l.done)
		defer cancel()
		l.run(loadCtx)
	}()
	return nil
}

// Load mounts the loader and waits for the outcome.
func (l *ContentLoader) Load(ctx context.Context) models.LoadState {
	if err := l.Mount(ctx); errors.Is(err, ErrTornDown) {
		return l.State()
	}
	<-l.done
	return l.State()
}

// Teardown cancels an in-flight load and waits for it to stop.
func (l *ContentLoader) Teardown() {
	l.mu.Lock()
	if l.torndown {
		l.mu.Unlock()
		return
	}
	l.torndown = true
	cancel := l.cancel
	l.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-l.done
}

func (l *ContentLoader) run(ctx context.Context) {
	doc, err := l.fetch(ctx)
	switch {
	case err == nil:
		l.update(func(s *models.LoadState) {
			s.Status = models.StatusSucceeded
			s.Data = doc
		})
	case errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled):
		l.update(func(s *models.LoadState) {
			s.Status = models.StatusIdle
		})
	default:
		log.Printf("[CONTENT]: load from %s failed: %v", l.endpoint, err)
		l.update(func(s *models.LoadState) {
			s.Status = models.StatusFailed
			s.Error = err.Error()
		})
	}
}

func (l *ContentLoader) fetch(ctx context.Context) (*models.ContentDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var doc models.ContentDocument
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxContentBytes))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after content")
		}
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return &doc, nil
}

func (l *ContentLoader) update(fn func(*models.LoadState)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.torndown {
		return
	}
	fn(&l.state)
	if l.onState != nil {
		l.onState(l.state)
	}
}
