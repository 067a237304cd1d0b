package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	dErrors "suraksha/pkg/domain-errors"
)

// HTTPClient implements Service against the two mocked upstreams. Calls carry
// a bounded timeout and are never retried; a timeout maps to the same
// upstream-unreachable path as a connection failure.
type HTTPClient struct {
	blockchain *resty.Client
	aiml       *resty.Client
	logger     *slog.Logger
}

func NewHTTPClient(blockchainURL, aimlURL string, timeout time.Duration, logger *slog.Logger) *HTTPClient {
	newClient := func(baseURL string) *resty.Client {
		return resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json")
	}
	return &HTTPClient{
		blockchain: newClient(blockchainURL),
		aiml:       newClient(aimlURL),
		logger:     logger,
	}
}

func (c *HTTPClient) IssueIdentity(ctx context.Context, req IssueIdentityRequest) (*IdentityRecord, error) {
	var record IdentityRecord
	resp, err := c.blockchain.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&record).
		Post("/createID")
	if err != nil {
		c.logger.Warn("identity issuance unreachable", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamUnreachable, "blockchain service unreachable")
	}
	if resp.IsError() {
		c.logger.Warn("identity issuance rejected",
			"status", resp.StatusCode(),
			"body", string(resp.Body()),
		)
		return nil, dErrors.New(dErrors.CodeBlockchainError,
			fmt.Sprintf("blockchain service returned status %d", resp.StatusCode()))
	}
	if record.BlockchainID == "" {
		return nil, dErrors.New(dErrors.CodeBlockchainError, "blockchain service returned no blockchainId")
	}
	return &record, nil
}

func (c *HTTPClient) CreateIdentity(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error) {
	return c.forward(ctx, c.blockchain.R().SetContext(ctx).SetBody([]byte(payload)), "POST", "/createID")
}

func (c *HTTPClient) VerifyIdentity(ctx context.Context, blockchainID string) (*UpstreamResponse, error) {
	req := c.blockchain.R().SetContext(ctx)
	if blockchainID != "" {
		req.SetQueryParam("blockchainId", blockchainID)
	}
	return c.forward(ctx, req, "GET", "/verifyID")
}

func (c *HTTPClient) SafetyScore(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error) {
	return c.forward(ctx, c.aiml.R().SetContext(ctx).SetBody([]byte(payload)), "POST", "/safetyScore")
}

func (c *HTTPClient) DetectAnomaly(ctx context.Context, payload json.RawMessage) (*UpstreamResponse, error) {
	return c.forward(ctx, c.aiml.R().SetContext(ctx).SetBody([]byte(payload)), "POST", "/detectAnomaly")
}

// forward executes a passthrough request and relays the upstream status and
// body as-is. Only a transport-level failure becomes an error.
func (c *HTTPClient) forward(_ context.Context, req *resty.Request, method, path string) (*UpstreamResponse, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Warn("upstream unreachable", "path", path, "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUpstreamUnreachable, "upstream unreachable")
	}
	body := resp.Body()
	if len(body) == 0 {
		body = []byte("{}")
	}
	return &UpstreamResponse{StatusCode: resp.StatusCode(), Body: body}, nil
}
