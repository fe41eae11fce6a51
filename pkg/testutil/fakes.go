// Package testutil provides provider fixtures and counting fakes for the
// gateway's collaborators.
package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/XavierBriggs/Janus/pkg/contracts"
	"github.com/XavierBriggs/Janus/pkg/models"
)

// StatusError is a provider error carrying an HTTP status
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, http.StatusText(e.Code))
}

// HTTPStatus exposes the status code
func (e *StatusError) HTTPStatus() int {
	return e.Code
}

// Reply is a canned upstream answer
type Reply struct {
	Body string
	Err  error
}

// FakeUpstream answers requests by path and counts every call
type FakeUpstream struct {
	mu       sync.Mutex
	replies  map[string]Reply
	requests []models.UpstreamRequest
}

var _ contracts.Upstream = (*FakeUpstream)(nil)

// NewFakeUpstream creates a fake with no routes; unknown paths answer 404
func NewFakeUpstream() *FakeUpstream {
	return &FakeUpstream{replies: make(map[string]Reply)}
}

// On sets the body returned for path
func (f *FakeUpstream) On(path, body string) *FakeUpstream {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[path] = Reply{Body: body}
	return f
}

// Fail sets the error returned for path
func (f *FakeUpstream) Fail(path string, err error) *FakeUpstream {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[path] = Reply{Err: err}
	return f
}

func (f *FakeUpstream) Get(_ context.Context, req models.UpstreamRequest) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, req)
	reply, ok := f.replies[req.Path]
	if !ok {
		return nil, &StatusError{Code: http.StatusNotFound}
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return []byte(reply.Body), nil
}

func (f *FakeUpstream) RateLimits() models.RateLimits {
	return models.RateLimits{}
}

// Calls returns the number of upstream requests issued
func (f *FakeUpstream) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

// Requests returns a copy of every request issued so far
func (f *FakeUpstream) Requests() []models.UpstreamRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.UpstreamRequest(nil), f.requests...)
}

// CountingLimiter grants every slot immediately and counts acquisitions
type CountingLimiter struct {
	acquisitions atomic.Int64
	Err          error
}

var _ contracts.Limiter = (*CountingLimiter)(nil)

func (l *CountingLimiter) Reserve() time.Duration {
	l.acquisitions.Add(1)
	return 0
}

func (l *CountingLimiter) Wait(ctx context.Context) (time.Duration, error) {
	if l.Err != nil {
		return 0, l.Err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.acquisitions.Add(1)
	return 0, nil
}

// Acquisitions returns the number of slots granted
func (l *CountingLimiter) Acquisitions() int {
	return int(l.acquisitions.Load())
}

// UsageSink collects usage records
type UsageSink struct {
	mu      sync.Mutex
	records []models.UsageRecord
}

var _ contracts.UsageRecorder = (*UsageSink)(nil)

func (s *UsageSink) Record(_ context.Context, rec models.UsageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Records returns a copy of the collected records
func (s *UsageSink) Records() []models.UsageRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.UsageRecord(nil), s.records...)
}

// ProviderServer is an httptest server that serves fixed bodies by path
type ProviderServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]string
	requests []*http.Request
}

// NewProviderServer starts a fake provider. Unknown paths answer 404.
func NewProviderServer(routes map[string]string) *ProviderServer {
	ps := &ProviderServer{routes: routes}
	ps.Server = httptest.NewServer(http.HandlerFunc(ps.handle))
	return ps
}

func (ps *ProviderServer) handle(w http.ResponseWriter, r *http.Request) {
	ps.mu.Lock()
	ps.requests = append(ps.requests, r.Clone(context.Background()))
	body, ok := ps.routes[r.URL.Path]
	ps.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(NotFoundBody))
		return
	}
	_, _ = w.Write([]byte(body))
}

// Requests returns the requests received so far
func (ps *ProviderServer) Requests() []*http.Request {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return append([]*http.Request(nil), ps.requests...)
}
