package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petkeeper/config"
	"petkeeper/internal/domain/constants"
	"petkeeper/internal/domain/entity"
	"petkeeper/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func cleanupEvent() *service.WorkerEvent {
	return &service.WorkerEvent{
		RequestID: "req-1",
		EventID:   "evt-1",
		Type:      service.WorkerEventTokensCleanup,
		UserIDs:   []string{"u1", "u2"},
	}
}

func TestPushEnvelope_RoundTrip(t *testing.T) {
	event := &service.WorkerEvent{
		EventID:  "evt-2",
		Type:     service.WorkerEventFamilyNotify,
		CallerID: "tc",
		Event:    &entity.FamilyEvent{Kind: entity.EventKindCustomMessage, Message: "Oi"},
	}

	envelope, err := NewPushEnvelope(event, "sub", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "evt-2", envelope.Message.MessageID)
	assert.Equal(t, "2024-01-01T00:00:00Z", envelope.Message.PublishTime)
	assert.Equal(t, "family.notify", envelope.Message.Attributes[constants.AttributeEventType])
	assert.NotContains(t, envelope.Message.Attributes, constants.AttributeRequestID)

	decoded, err := envelope.DecodeWorkerEvent()
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestPushEnvelope_DecodeErrors(t *testing.T) {
	envelope := &PushEnvelope{}
	envelope.Message.Data = "%%%"
	_, err := envelope.DecodeWorkerEvent()
	assert.Error(t, err)

	envelope.Message.Data = "bm90IGpzb24=" // "not json"
	_, err = envelope.DecodeWorkerEvent()
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_PublishWorkerEvent(t *testing.T) {
	var received PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishWorkerEvent(context.Background(), cleanupEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "req-1", received.Message.Attributes[constants.AttributeRequestID])

	decoded, err := received.DecodeWorkerEvent()
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, decoded.UserIDs)
	assert.NoError(t, publisher.Close())
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishWorkerEvent(context.Background(), cleanupEvent())
	assert.ErrorContains(t, err, "503")
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	newParams := func(cfg *config.PubSubConfig) PublisherParams {
		return PublisherParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{PubSub: cfg},
			Logger: discardLogger(),
		}
	}

	publisher, err := NewEventPublisher(newParams(nil))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderNoop}))
	require.NoError(t, err)
	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishWorkerEvent(context.Background(), cleanupEvent()))

	publisher, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}))
	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}))
	assert.Error(t, err)

	_, err = NewEventPublisher(newParams(&config.PubSubConfig{Provider: "kafka"}))
	assert.Error(t, err)
}

func TestNewMessage(t *testing.T) {
	msg, err := newMessage(cleanupEvent())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		constants.AttributeEventType: "tokens.cleanup",
		constants.AttributeRequestID: "req-1",
	}, msg.Attributes)

	var decoded service.WorkerEvent
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	assert.Equal(t, *cleanupEvent(), decoded)
}
