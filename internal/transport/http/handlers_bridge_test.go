package httptransport

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"

	"suraksha/internal/bridge"
	dErrors "suraksha/pkg/domain-errors"
	"suraksha/pkg/testutil"
)

type BridgeHandlerSuite struct {
	suite.Suite
}

func TestBridgeHandlerSuite(t *testing.T) {
	suite.Run(t, new(BridgeHandlerSuite))
}

func (s *BridgeHandlerSuite) TestProxyRoutes() {
	s.Run("createID forwards the body and relays the response", func() {
		env := newTestEnv(s.T())
		var gotPath string
		var gotPayload json.RawMessage
		env.bridge.forwardFn = func(path string, payload json.RawMessage) (*bridge.UpstreamResponse, error) {
			gotPath = path
			gotPayload = payload
			return &bridge.UpstreamResponse{StatusCode: http.StatusCreated, Body: []byte(`{"blockchainId":"bc_1"}`)}, nil
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/bridge/blockchain/createID", map[string]string{
			"userId": "t001",
		}))
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		s.Equal("/createID", gotPath)
		s.JSONEq(`{"userId":"t001"}`, string(gotPayload))
		s.JSONEq(`{"blockchainId":"bc_1"}`, rr.Body.String())
	})

	s.Run("verifyID forwards the query param", func() {
		env := newTestEnv(s.T())
		var gotPayload json.RawMessage
		env.bridge.forwardFn = func(_ string, payload json.RawMessage) (*bridge.UpstreamResponse, error) {
			gotPayload = payload
			return &bridge.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{"valid":true}`)}, nil
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/bridge/blockchain/verifyID?blockchainId=bc_0xabc", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.JSONEq(`{"blockchainId":"bc_0xabc"}`, string(gotPayload))
	})

	s.Run("upstream error statuses pass through untranslated", func() {
		env := newTestEnv(s.T())
		env.bridge.forwardFn = func(string, json.RawMessage) (*bridge.UpstreamResponse, error) {
			return &bridge.UpstreamResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"error":"unknown id"}`)}, nil
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodGet, "/api/bridge/blockchain/verifyID", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusNotFound)
		s.JSONEq(`{"error":"unknown id"}`, rr.Body.String())
	})

	s.Run("unreachable upstream is the gateway's own 502", func() {
		env := newTestEnv(s.T())
		env.bridge.forwardFn = func(string, json.RawMessage) (*bridge.UpstreamResponse, error) {
			return nil, dErrors.New(dErrors.CodeUpstreamUnreachable, "connect refused")
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/bridge/aiml/safetyScore", map[string]string{"userId": "t001"}))
		testutil.AssertStatus(s.T(), rr, http.StatusBadGateway)
		testutil.AssertErrorCode(s.T(), rr, string(dErrors.CodeUpstreamUnreachable))
	})

	s.Run("aiml routes reach their paths", func() {
		env := newTestEnv(s.T())
		var paths []string
		env.bridge.forwardFn = func(path string, _ json.RawMessage) (*bridge.UpstreamResponse, error) {
			paths = append(paths, path)
			return &bridge.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/bridge/aiml/safetyScore", map[string]string{}))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		rr = testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/bridge/aiml/detectAnomaly", map[string]string{}))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.Equal([]string{"/safetyScore", "/detectAnomaly"}, paths)
	})

	s.Run("empty request body becomes an empty object", func() {
		env := newTestEnv(s.T())
		var gotPayload json.RawMessage
		env.bridge.forwardFn = func(_ string, payload json.RawMessage) (*bridge.UpstreamResponse, error) {
			gotPayload = payload
			return &bridge.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}, nil
		}

		rr := testutil.DoRequest(env.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/api/bridge/blockchain/createID", nil))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		s.JSONEq(`{}`, string(gotPayload))
	})
}
