package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"go.uber.org/zap"
)

var (
	ErrNoEndpoint       = errors.New("no dispatch endpoint configured")
	ErrDispatchInFlight = errors.New("a dispatch for this case is already in flight")
)

// DispatchClient posts notice payloads to the automation endpoint. It makes
// exactly one attempt per Send.
type DispatchClient struct {
	http   *http.Client
	logger *zap.SugaredLogger
}

// NewDispatchClient uses a zero-value http.Client when httpClient is nil
func NewDispatchClient(httpClient *http.Client, logger *zap.SugaredLogger) *DispatchClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &DispatchClient{http: httpClient, logger: logger}
}

// Send posts payload to endpoint. An empty endpoint returns ErrNoEndpoint
// without touching the network; every other problem is reported as a
// failure outcome. observe, when non-nil, sees pending before the request
// and the final outcome after it.
func (c *DispatchClient) Send(ctx context.Context, endpoint string, payload models.DispatchPayload, observe func(models.DispatchOutcome)) (models.DispatchResult, error) {
	if endpoint == "" {
		return models.DispatchResult{Outcome: models.DispatchIdle}, ErrNoEndpoint
	}
	if observe == nil {
		observe = func(models.DispatchOutcome) {}
	}
	observe(models.DispatchPending)

	result := c.post(ctx, endpoint, payload)
	if result.Outcome == models.DispatchSuccess {
		c.logger.Infow("Notice dispatched", "file_number", payload.FileNumber, "status", result.StatusCode)
	} else {
		c.logger.Warnw("Notice dispatch failed",
			"file_number", payload.FileNumber,
			"status", result.StatusCode,
			"error", result.Error,
		)
	}

	observe(result.Outcome)
	return result, nil
}

func (c *DispatchClient) post(ctx context.Context, endpoint string, payload models.DispatchPayload) models.DispatchResult {
	body, err := json.Marshal(payload)
	if err != nil {
		return failure(0, fmt.Errorf("encode payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return failure(0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return failure(0, fmt.Errorf("post notice: %w", err))
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(resp.StatusCode, fmt.Errorf("endpoint responded %s", resp.Status))
	}
	return models.DispatchResult{Outcome: models.DispatchSuccess, StatusCode: resp.StatusCode}
}

func failure(status int, err error) models.DispatchResult {
	return models.DispatchResult{Outcome: models.DispatchFailure, StatusCode: status, Error: err.Error()}
}

// DispatchTracker is the caller side of the dispatch protocol. It runs sends
// off the request path, surfaces the per-case outcome, and returns a final
// outcome to idle once the display window has passed.
type DispatchTracker struct {
	client     *DispatchClient
	settings   *SettingsService
	resetAfter time.Duration
	logger     *zap.SugaredLogger

	mu     sync.Mutex
	states map[string]*trackedDispatch
}

type trackedDispatch struct {
	gen    uint64
	status models.DispatchStatus
	timer  *time.Timer
}

func NewDispatchTracker(client *DispatchClient, settings *SettingsService, resetAfter time.Duration, logger *zap.SugaredLogger) *DispatchTracker {
	return &DispatchTracker{
		client:     client,
		settings:   settings,
		resetAfter: resetAfter,
		logger:     logger,
		states:     make(map[string]*trackedDispatch),
	}
}

// Start checks the endpoint precondition and launches the send. The send
// is detached from ctx's cancellation and cannot be aborted. The returned
// channel yields the final result once.
func (t *DispatchTracker) Start(ctx context.Context, caseID string, payload models.DispatchPayload) (<-chan models.DispatchResult, error) {
	endpoint, err := t.settings.DispatchEndpoint(ctx)
	if err != nil {
		return nil, err
	}
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}

	t.mu.Lock()
	st, ok := t.states[caseID]
	if ok && st.status.Outcome == models.DispatchPending {
		t.mu.Unlock()
		return nil, ErrDispatchInFlight
	}
	if !ok {
		st = &trackedDispatch{}
		t.states[caseID] = st
	}
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	st.gen++
	gen := st.gen
	st.status = models.DispatchStatus{CaseID: caseID, Outcome: models.DispatchPending}
	t.mu.Unlock()

	done := make(chan models.DispatchResult, 1)
	sendCtx := context.WithoutCancel(ctx)

	go func() {
		result, err := t.client.Send(sendCtx, endpoint, payload, func(o models.DispatchOutcome) {
			t.observe(caseID, gen, o)
		})
		if err != nil {
			result = failure(0, err)
		}
		t.finish(caseID, gen, result)
		done <- result
		close(done)
	}()

	return done, nil
}

// Status returns the surfaced outcome for a case; idle when nothing is shown
func (t *DispatchTracker) Status(caseID string) models.DispatchStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[caseID]
	if !ok {
		return models.DispatchStatus{CaseID: caseID, Outcome: models.DispatchIdle}
	}
	out := st.status
	if out.Result != nil {
		r := *out.Result
		out.Result = &r
	}
	return out
}

// observe only records pending; finish sets the final outcome together
// with its result so Status never shows one without the other.
func (t *DispatchTracker) observe(caseID string, gen uint64, o models.DispatchOutcome) {
	if o != models.DispatchPending {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.states[caseID]; ok && st.gen == gen {
		st.status.Outcome = o
	}
}

func (t *DispatchTracker) finish(caseID string, gen uint64, result models.DispatchResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.states[caseID]
	if !ok || st.gen != gen {
		return
	}
	st.status.Outcome = result.Outcome
	st.status.Result = &result
	st.timer = time.AfterFunc(t.resetAfter, func() {
		t.reset(caseID, gen)
	})
}

func (t *DispatchTracker) reset(caseID string, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.states[caseID]; ok && st.gen == gen {
		delete(t.states, caseID)
	}
}
