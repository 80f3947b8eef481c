package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"petkeeper/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/fanout-worker"
	localPushTimeout  = 30 * time.Second
)

// localHTTPPublisher posts push envelopes straight to a worker, standing in
// for a Pub/Sub push subscription during development
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
	now      func() time.Time
}

// NewLocalHTTPPublisher pushes every event synchronously to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: localPushTimeout},
		logger:   logger,
		now:      time.Now,
	}
}

func (p *localHTTPPublisher) PublishWorkerEvent(ctx context.Context, event *service.WorkerEvent) error {
	envelope, err := NewPushEnvelope(event, localSubscription, p.now())
	if err != nil {
		return err
	}

	status, err := p.push(ctx, envelope, event.RequestID)
	if err != nil {
		return err
	}
	// The worker answers 503 for events it wants redelivered; there is no
	// redelivery here, so surface it to the caller.
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return errors.Errorf("worker rejected %s event with status %d", event.Type, status)
	}

	p.logger.Debug("Worker event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_id", event.EventID),
		slog.String("event_type", string(event.Type)),
	)

	return nil
}

func (p *localHTTPPublisher) push(ctx context.Context, envelope *PushEnvelope, requestID string) (int, error) {
	body, err := json.Marshal(envelope)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "failed to reach worker")
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

func (p *localHTTPPublisher) Close() error {
	p.client.CloseIdleConnections()

	return nil
}
