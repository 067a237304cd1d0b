// Package bridge adapts the two mocked upstream services (blockchain identity
// issuance and AI/ML safety scoring) behind a narrow capability interface so
// domain logic never touches a transport library directly.
package bridge

import (
	"context"
	"encoding/json"
)

// IssueIdentityRequest is the typed payload sent to the identity service when
// an approval is processed.
type IssueIdentityRequest struct {
	UserID         string `json:"userId"`
	Name           string `json:"name"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
}

// IdentityRecord is the identity service's answer to a createID call.
type IdentityRecord struct {
	BlockchainID string `json:"blockchainId"`
	QR           string `json:"qr,omitempty"`
	Status       string `json:"status,omitempty"`
	ExpiresAt    string `json:"expiresAt,omitempty"`
	UserID       string `json:"userId,omitempty"`
	Name         string `json:"name,omitempty"`
}

// UpstreamResponse relays an upstream's own status and body verbatim. A non-2xx
// status is not an adapter error: proxy routes pass it through unchanged.
type UpstreamResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// Service is the upstream capability the gateway depends on. Implemented by
// the resty HTTP adapter in production and by stubs in tests. Failures are
// never retried; every failure surfaces as a coded error.
type Service interface {
	// IssueIdentity requests a new blockchain identity during approval. Any
	// transport failure or non-success upstream status is an error so the
	// caller never marks a tourist verified on a failed issuance.
	IssueIdentity(ctx context.Context, req IssueIdentityRequest) (*IdentityRecord, error)

	// CreateIdentity forwards a raw createID payload (proxy route).
	CreateIdentity(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error)

	// VerifyIdentity is a read-only passthrough status check.
	VerifyIdentity(ctx context.Context, blockchainID string) (*UpstreamResponse, error)

	// SafetyScore forwards a raw safetyScore payload (proxy route).
	SafetyScore(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error)

	// DetectAnomaly forwards a raw detectAnomaly payload (proxy route).
	DetectAnomaly(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error)
}
