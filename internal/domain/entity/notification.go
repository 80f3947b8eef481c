// Package entity contains the core business objects of the project.
package entity

// NotificationPayload is the message sent to every target token of one dispatch.
type NotificationPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"` // String-to-string map delivered to the client app.
}

// DeliveryErrorCode is the transport's classification of a per-token failure.
type DeliveryErrorCode string

const (
	DeliveryErrorInvalidArgument     DeliveryErrorCode = "invalid-argument"
	DeliveryErrorTokenNotRegistered  DeliveryErrorCode = "registration-token-not-registered"
	DeliveryErrorUnregistered        DeliveryErrorCode = "unregistered"
	DeliveryErrorSenderIDMismatch    DeliveryErrorCode = "sender-id-mismatch"
	DeliveryErrorQuotaExceeded       DeliveryErrorCode = "quota-exceeded"
	DeliveryErrorUnavailable         DeliveryErrorCode = "unavailable"
	DeliveryErrorInternal            DeliveryErrorCode = "internal"
	DeliveryErrorThirdPartyAuthError DeliveryErrorCode = "third-party-auth-error"
	DeliveryErrorUnknown             DeliveryErrorCode = "unknown"
)

// IsDeadToken reports whether the code proves the token can never be delivered to again.
// Only these codes may cause a token to be removed from a profile.
func (c DeliveryErrorCode) IsDeadToken() bool {
	switch c {
	case DeliveryErrorInvalidArgument, DeliveryErrorTokenNotRegistered, DeliveryErrorUnregistered:
		return true
	default:
		return false
	}
}

// DeliveryOutcome is the per-token result of a multicast send.
type DeliveryOutcome struct {
	Token     string            `json:"token"`
	Success   bool              `json:"success"`
	MessageID string            `json:"message_id,omitempty"`
	ErrorCode DeliveryErrorCode `json:"error_code,omitempty"`
	Error     string            `json:"error,omitempty"`
}

// DispatchResult aggregates the outcomes of one dispatch, positionally aligned with its tokens.
type DispatchResult struct {
	TokenCount   int               `json:"token_count"`
	SentCount    int               `json:"sent_count"`
	FailureCount int               `json:"failure_count"`
	Outcomes     []DeliveryOutcome `json:"outcomes,omitempty"`
}

// DeadTokens returns the tokens whose outcome carries a dead-token code.
func (r *DispatchResult) DeadTokens() []string {
	if r == nil {
		return nil
	}

	var dead []string
	for _, outcome := range r.Outcomes {
		if !outcome.Success && outcome.ErrorCode.IsDeadToken() {
			dead = append(dead, outcome.Token)
		}
	}

	return dead
}
