package realtime

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"suraksha/internal/alert"
)

type HubSuite struct {
	suite.Suite
	hub    *Hub
	server *httptest.Server
	wsURL  string
}

func (s *HubSuite) SetupTest() {
	s.hub = NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	s.server = httptest.NewServer(http.HandlerFunc(s.hub.HandleWebSocket))
	s.wsURL = "ws" + strings.TrimPrefix(s.server.URL, "http")
}

func (s *HubSuite) TearDownTest() {
	s.hub.Close()
	s.server.Close()
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

func (s *HubSuite) dial() *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL, nil)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })
	return conn
}

// waitForSessions polls until the hub has registered n sessions; registration
// happens after the upgrade handshake returns to the dialer.
func (s *HubSuite) waitForSessions(n int) {
	deadline := time.Now().Add(2 * time.Second)
	for s.hub.SessionCount() != n {
		if time.Now().After(deadline) {
			s.Require().FailNowf("timeout", "expected %d sessions, have %d", n, s.hub.SessionCount())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func (s *HubSuite) readEnvelope(conn *websocket.Conn) (string, alert.Event) {
	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	_, msg, err := conn.ReadMessage()
	s.Require().NoError(err)

	var env struct {
		Event string      `json:"event"`
		Data  alert.Event `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(msg, &env))
	return env.Event, env.Data
}

func (s *HubSuite) TestBroadcastReachesAllSessions() {
	conns := []*websocket.Conn{s.dial(), s.dial(), s.dial()}
	s.waitForSessions(3)

	sent := alert.Event{
		AlertID:   "a_1",
		UserID:    "t001",
		Name:      "Asha Verma",
		Location:  alert.Location{Lat: 28.6139, Lng: 77.209},
		Severity:  alert.SeverityHigh,
		Timestamp: "2026-08-30T10:00:00Z",
		Notes:     "help",
	}
	s.hub.BroadcastPanic(sent)

	for _, conn := range conns {
		name, got := s.readEnvelope(conn)
		s.Equal(EventPanicAlert, name)
		s.Equal(sent, got)
	}
}

func (s *HubSuite) TestLateJoinerGetsNoHistory() {
	early := s.dial()
	s.waitForSessions(1)

	s.hub.BroadcastPanic(alert.Event{AlertID: "a_before"})
	_, got := s.readEnvelope(early)
	s.Equal("a_before", got.AlertID)

	late := s.dial()
	s.waitForSessions(2)

	s.Require().NoError(late.SetReadDeadline(time.Now().Add(200 * time.Millisecond)))
	_, _, err := late.ReadMessage()
	s.Require().Error(err, "no replay for new sessions")

	// The existing session still receives fresh events.
	s.hub.BroadcastPanic(alert.Event{AlertID: "a_after"})
	_, got = s.readEnvelope(early)
	s.Equal("a_after", got.AlertID)
}

func (s *HubSuite) TestDisconnectedSessionIsRemoved() {
	conn := s.dial()
	s.waitForSessions(1)

	s.Require().NoError(conn.Close())
	s.waitForSessions(0)

	// Broadcasting into an empty hub is a no-op.
	s.hub.BroadcastPanic(alert.Event{AlertID: "a_nobody"})
}

func (s *HubSuite) TestCloseRejectsNewSessions() {
	s.hub.Close()

	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL, nil)
	if err == nil {
		// The upgrade itself may succeed; the hub closes the connection at
		// registration, so the first read fails.
		s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
		_, _, readErr := conn.ReadMessage()
		s.Error(readErr)
		_ = conn.Close()
	}
	s.Equal(0, s.hub.SessionCount())
}
