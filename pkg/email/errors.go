package email

import "fmt"

// FailureKind classifies a transport failure for logs and metrics.
type FailureKind string

const (
	// KindCredentialMissing means the transport configuration is absent.
	// Detected locally, no network call is made.
	KindCredentialMissing FailureKind = "credential_missing"
	// KindAuthFailed means the provider rejected our credentials.
	KindAuthFailed FailureKind = "auth_failed"
	// KindSendRejected means the provider was reachable but refused the
	// message (bad payload, quota, policy).
	KindSendRejected FailureKind = "send_rejected"
	// KindTransportUnavailable covers network errors and timeouts.
	KindTransportUnavailable FailureKind = "transport_unavailable"
)

// SendError wraps a transport failure with its provider and classification.
type SendError struct {
	Provider string
	Kind     FailureKind
	Hint     string
	Err      error
}

func (e *SendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Kind)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

func newSendError(provider string, kind FailureKind, err error) *SendError {
	return &SendError{Provider: provider, Kind: kind, Err: err}
}
