package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"petkeeper/internal/domain/constants"
	"petkeeper/internal/domain/service"

	"github.com/pkg/errors"
)

// PushEnvelope is the body Google Pub/Sub push subscriptions POST to an endpoint.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are attached to every published message for filtering and tracing.
func eventAttributes(event *service.WorkerEvent) map[string]string {
	attributes := map[string]string{
		constants.AttributeEventType: string(event.Type),
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return attributes
}

// NewPushEnvelope wraps event the same way a push subscription would deliver it.
func NewPushEnvelope(event *service.WorkerEvent, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = eventAttributes(event)
	envelope.Message.MessageID = event.EventID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeWorkerEvent extracts the worker event carried by the envelope.
func (e *PushEnvelope) DecodeWorkerEvent() (*service.WorkerEvent, error) {
	data, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.WorkerEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse worker event")
	}

	return &event, nil
}
