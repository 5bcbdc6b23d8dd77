package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPayload() models.DispatchPayload {
	return models.DispatchPayload{
		Timestamp:     "2026-03-02T09:00:00Z",
		FileNumber:    "A/1024/2024",
		Subject:       "Unpaid wages",
		HearingDate:   models.HearingDateTBD,
		NoticeContent: "notice",
	}
}

func TestDispatchClient_Success(t *testing.T) {
	payloads := make(chan models.DispatchPayload, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var p models.DispatchPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		payloads <- p
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var seen []models.DispatchOutcome
	c := NewDispatchClient(srv.Client(), testLogger())
	result, err := c.Send(context.Background(), srv.URL, testPayload(), func(o models.DispatchOutcome) {
		seen = append(seen, o)
	})

	require.NoError(t, err)
	assert.Equal(t, models.DispatchSuccess, result.Outcome)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, []models.DispatchOutcome{models.DispatchPending, models.DispatchSuccess}, seen)
	assert.Equal(t, "A/1024/2024", (<-payloads).FileNumber)
}

func TestDispatchClient_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var seen []models.DispatchOutcome
	c := NewDispatchClient(srv.Client(), testLogger())
	result, err := c.Send(context.Background(), srv.URL, testPayload(), func(o models.DispatchOutcome) {
		seen = append(seen, o)
	})

	require.NoError(t, err)
	assert.Equal(t, models.DispatchFailure, result.Outcome)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.NotEmpty(t, result.Error)
	assert.Equal(t, []models.DispatchOutcome{models.DispatchPending, models.DispatchFailure}, seen)
}

func TestDispatchClient_TransportErrorIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewDispatchClient(nil, testLogger())
	result, err := c.Send(context.Background(), url, testPayload(), nil)

	require.NoError(t, err)
	assert.Equal(t, models.DispatchFailure, result.Outcome)
	assert.Zero(t, result.StatusCode)
}

func TestDispatchClient_NoEndpoint(t *testing.T) {
	called := false
	c := NewDispatchClient(nil, testLogger())
	result, err := c.Send(context.Background(), "", testPayload(), func(models.DispatchOutcome) { called = true })

	assert.ErrorIs(t, err, ErrNoEndpoint)
	assert.Equal(t, models.DispatchIdle, result.Outcome)
	assert.False(t, called, "no outcome is observed when the precondition fails")
}

func newTestTracker(t *testing.T, endpoint string, resetAfter time.Duration) *DispatchTracker {
	t.Helper()
	settings := NewSettingsService(store.NewMemory(), testLogger())
	if endpoint != "" {
		require.NoError(t, settings.SetDispatchEndpoint(context.Background(), endpoint))
	}
	return NewDispatchTracker(NewDispatchClient(nil, testLogger()), settings, resetAfter, testLogger())
}

func TestDispatchTracker_Lifecycle(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	tr := newTestTracker(t, srv.URL, 50*time.Millisecond)
	assert.Equal(t, models.DispatchIdle, tr.Status("c1").Outcome)

	done, err := tr.Start(context.Background(), "c1", testPayload())
	require.NoError(t, err)
	assert.Equal(t, models.DispatchPending, tr.Status("c1").Outcome)

	_, err = tr.Start(context.Background(), "c1", testPayload())
	assert.ErrorIs(t, err, ErrDispatchInFlight)

	close(release)
	result := <-done
	assert.Equal(t, models.DispatchSuccess, result.Outcome)

	status := tr.Status("c1")
	assert.Equal(t, models.DispatchSuccess, status.Outcome)
	require.NotNil(t, status.Result)
	assert.Equal(t, http.StatusAccepted, status.Result.StatusCode)

	assert.Eventually(t, func() bool {
		return tr.Status("c1").Outcome == models.DispatchIdle
	}, time.Second, 10*time.Millisecond)
}

func TestDispatchTracker_FinalOutcomeCarriesResult(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTracker(t, srv.URL, time.Minute)
	done, err := tr.Start(context.Background(), "c1", testPayload())
	require.NoError(t, err)

	tr.mu.Lock()
	gen := tr.states["c1"].gen
	tr.mu.Unlock()

	// the client reports the final outcome before the tracker has the result
	tr.observe("c1", gen, models.DispatchSuccess)
	status := tr.Status("c1")
	assert.Equal(t, models.DispatchPending, status.Outcome)
	assert.Nil(t, status.Result)

	close(release)
	<-done

	status = tr.Status("c1")
	assert.Equal(t, models.DispatchSuccess, status.Outcome)
	require.NotNil(t, status.Result)
	assert.Equal(t, http.StatusOK, status.Result.StatusCode)
}

func TestDispatchTracker_FailureResets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	tr := newTestTracker(t, srv.URL, 30*time.Millisecond)
	done, err := tr.Start(context.Background(), "c1", testPayload())
	require.NoError(t, err)

	result := <-done
	assert.Equal(t, models.DispatchFailure, result.Outcome)
	assert.Equal(t, models.DispatchFailure, tr.Status("c1").Outcome)

	assert.Eventually(t, func() bool {
		return tr.Status("c1").Outcome == models.DispatchIdle
	}, time.Second, 10*time.Millisecond)
}

func TestDispatchTracker_NoEndpoint(t *testing.T) {
	tr := newTestTracker(t, "", time.Second)
	done, err := tr.Start(context.Background(), "c1", testPayload())
	assert.ErrorIs(t, err, ErrNoEndpoint)
	assert.Nil(t, done)
	assert.Equal(t, models.DispatchIdle, tr.Status("c1").Outcome)
}

func TestDispatchTracker_SurvivesCallerCancel(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTracker(t, srv.URL, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	done, err := tr.Start(ctx, "c1", testPayload())
	require.NoError(t, err)
	cancel()

	result := <-done
	assert.Equal(t, models.DispatchSuccess, result.Outcome)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDispatchTracker_IndependentCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := newTestTracker(t, srv.URL, time.Second)

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c"} {
		done, err := tr.Start(context.Background(), id, testPayload())
		require.NoError(t, err)
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-done
		}()
	}
	wg.Wait()

	for _, id := range []string{"a", "b", "c"} {
		assert.Equal(t, models.DispatchSuccess, tr.Status(id).Outcome, id)
	}
}
