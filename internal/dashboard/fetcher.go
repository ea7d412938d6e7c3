package dashboard

import (
	"context"
	"errors"

	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/domain"
	"github.com/Design-Arena-Gens/agentic-c0a91717/internal/service"
)

// Generic messages used when a failure carries nothing more specific.
const (
	MsgStatsFailed = "Failed to load stats"
	MsgRunFailed   = "Failed to load run"
)

// Fetcher loads the two resources the dashboard shows.
type Fetcher interface {
	FetchStats(ctx context.Context) (*domain.StatSummary, error)
	FetchRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error)
}

// FetchError is a failure whose Message is fit to show to the user.
type FetchError struct {
	Message string
	// Status is the HTTP status code, or 0 when no response was received.
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// errorMessage turns any fetch failure into the text stored in an error slot.
func errorMessage(err error, fallback string) string {
	var fe *FetchError
	if errors.As(err, &fe) && fe.Message != "" {
		return fe.Message
	}
	return fallback
}

// ServiceFetcher reads straight from the service, for rendering the page
// inside the server process. Failures carry the same messages the HTTP
// endpoints return.
type ServiceFetcher struct {
	svc *service.Service
}

// NewServiceFetcher creates an in-process fetcher.
func NewServiceFetcher(svc *service.Service) *ServiceFetcher {
	return &ServiceFetcher{svc: svc}
}

// Ensure both fetchers implement Fetcher.
var (
	_ Fetcher = (*ServiceFetcher)(nil)
	_ Fetcher = (*Client)(nil)
)

func (f *ServiceFetcher) FetchStats(ctx context.Context) (*domain.StatSummary, error) {
	stats, err := f.svc.GetStats(ctx)
	if err != nil {
		return nil, &FetchError{Message: MsgStatsFailed, Err: err}
	}
	return stats, nil
}

func (f *ServiceFetcher) FetchRun(ctx context.Context, runID string) (*domain.OrchestrationRun, error) {
	run, err := f.svc.GetRun(ctx, []string{runID})
	switch {
	case errors.Is(err, service.ErrInvalidRunID):
		return nil, &FetchError{Message: service.InvalidRunIDMessage, Err: err}
	case errors.Is(err, service.ErrRunNotFound):
		return nil, &FetchError{Message: service.RunNotFoundMessage, Err: err}
	case err != nil:
		return nil, &FetchError{Message: MsgRunFailed, Err: err}
	}
	return run, nil
}
