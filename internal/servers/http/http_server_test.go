package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/handlers"
	"eventPlanner/internal/realtime"
	"eventPlanner/internal/services"
	"eventPlanner/internal/utils"
)

var testJwtKey = []byte("test-secret")

type testEnv struct {
	registry *realtime.Registry
	server   *httptest.Server
	token    string
}

func newTestEnv(t *testing.T, checks ...handlers.ReadinessCheck) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := realtime.NewRegistry()
	relay := realtime.NewRelay(registry)
	authService := services.NewAuthenticationService(nil, testJwtKey, time.Hour)
	eventService := services.NewEventService(nil, relay)
	conferenceService := services.NewConferenceService(nil, nil, relay)
	tradeshowService := services.NewTradeshowService(nil, nil, nil, relay)
	sessionService := services.NewSessionService(nil, nil, relay)

	hs := NewHttpServer(0, time.Second, Handlers{
		Rest:         handlers.NewRestHandler(authService),
		Events:       handlers.NewEventHandler(eventService, relay),
		Conference:   handlers.NewConferenceHandler(conferenceService),
		Tradeshow:    handlers.NewTradeshowHandler(tradeshowService),
		Sessions:     handlers.NewSessionHandler(sessionService),
		QRCheckIn:    handlers.NewQRCheckInHandler(conferenceService, tradeshowService),
		Socket:       handlers.NewSocketEventHandler(relay, handlers.SocketOptions{}),
		Health:       handlers.NewHealthHandler(registry, checks...),
		Authenticate: handlers.MustAuthenticateMiddleware(authService),
	})

	server := httptest.NewServer(hs.Router())
	t.Cleanup(func() {
		registry.CloseAll()
		server.Close()
	})

	token, err := utils.CreateJwtToken(1, "planner@example.com", testJwtKey, time.Now().Add(time.Hour))
	require.NoError(t, err)

	return &testEnv{registry: registry, server: server, token: token}
}

func (env *testEnv) dial(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(env.server.URL, "http") + path
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, nethttp.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// join dials path and consumes the greeting, which is only written once
// the connection is a member of its room.
func (env *testEnv) join(t *testing.T, path string) *websocket.Conn {
	t.Helper()
	conn := env.dial(t, path)
	greeting := readFrame(t, conn)
	require.Equal(t, "connection_established", greeting["type"])
	return conn
}

func (env *testEnv) notify(t *testing.T, path, token, body string) *nethttp.Response {
	t.Helper()
	req, err := nethttp.NewRequest(nethttp.MethodPost, env.server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := nethttp.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, msgType)
	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

// assertSilent checks nothing arrives within a short window. The read
// deadline breaks the connection, so call it last.
func assertSilent(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, data, err := conn.ReadMessage()
	var netErr net.Error
	require.Error(t, err, "unexpected frame %s", data)
	assert.True(t, errors.As(err, &netErr) && netErr.Timeout(), "expected read timeout, got %v", err)
}

func TestSocket_ConnectionEstablished(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, "/ws/conference/evt1")

	frame := readFrame(t, conn)
	assert.Equal(t, map[string]any{
		"type":    "connection_established",
		"message": "Connected to conference evt1",
	}, frame)
}

func TestSocket_BareRouteUsesDefaultRoom(t *testing.T) {
	env := newTestEnv(t)
	conn := env.dial(t, "/ws/tradeshow")

	frame := readFrame(t, conn)
	assert.Equal(t, "Connected to tradeshow default", frame["message"])

	rooms, connections := env.registry.Stats()
	assert.Equal(t, 1, rooms)
	assert.Equal(t, 1, connections)
	assert.Len(t, env.registry.Members(realtime.NewRoom(realtime.DomainTradeshow, "")), 1)
}

func TestSocket_UnknownDomainRejected(t *testing.T) {
	env := newTestEnv(t)
	url := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws/festival/1"

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
}

func TestSocket_InvalidJSONAnsweredToSenderOnly(t *testing.T) {
	env := newTestEnv(t)
	sender := env.join(t, "/ws/conference/evt1")
	other := env.join(t, "/ws/conference/evt1")

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte("not-json")))

	assert.Equal(t, map[string]any{"type": "error", "message": "Invalid JSON"}, readFrame(t, sender))
	assertSilent(t, other)

	_, connections := env.registry.Stats()
	assert.Equal(t, 2, connections)
}

func TestSocket_ClientMessageEchoedToWholeRoom(t *testing.T) {
	env := newTestEnv(t)
	a := env.join(t, "/ws/tradeshow/evt9")
	b := env.join(t, "/ws/tradeshow/evt9")
	outsider := env.join(t, "/ws/conference/evt9")

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"foo":"bar"}`)))

	want := map[string]any{"type": "broadcast_update", "data": map[string]any{"foo": "bar"}}
	assert.Equal(t, want, readFrame(t, a))
	assert.Equal(t, want, readFrame(t, b))
	assertSilent(t, outsider)
}

func TestSocket_NoDeliveryAfterDisconnect(t *testing.T) {
	env := newTestEnv(t)
	stays := env.join(t, "/ws/conference/42")
	leaves := env.join(t, "/ws/conference/42")

	require.NoError(t, leaves.Close())
	require.Eventually(t, func() bool {
		_, connections := env.registry.Stats()
		return connections == 1
	}, 2*time.Second, 10*time.Millisecond)

	resp := env.notify(t, "/api/conference/events/42/notify", env.token, `{"kind":"guest_update","data":{"id":7}}`)
	require.Equal(t, nethttp.StatusAccepted, resp.StatusCode)

	frame := readFrame(t, stays)
	assert.Equal(t, "guest_update", frame["type"])
	assert.Equal(t, map[string]any{"id": float64(7)}, frame["data"])
}

func TestSocket_RoomDisappearsWithLastMember(t *testing.T) {
	env := newTestEnv(t)
	conn := env.join(t, "/ws/conference/solo")

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		rooms, _ := env.registry.Stats()
		return rooms == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSocket_PublishOrderIsPreserved(t *testing.T) {
	env := newTestEnv(t)
	conn := env.join(t, "/ws/tradeshow/7")
	relay := realtime.NewRelay(env.registry)
	room := realtime.NewRoom(realtime.DomainTradeshow, "7")

	for i := 0; i < 20; i++ {
		require.NoError(t, relay.Publish(context.Background(), room, "booth_update", map[string]int{"seq": i}))
	}
	for i := 0; i < 20; i++ {
		frame := readFrame(t, conn)
		assert.Equal(t, float64(i), frame["data"].(map[string]any)["seq"])
	}
}

func TestNotify(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		path   string
		token  string
		body   string
		status int
	}{
		{"accepted", "/api/conference/events/1/notify", env.token, `{"kind":"element_update","data":{"action":"created"}}`, nethttp.StatusAccepted},
		{"accepted without data", "/api/tradeshow/events/1/notify", env.token, `{"kind":"booth_update"}`, nethttp.StatusAccepted},
		{"missing kind", "/api/conference/events/1/notify", env.token, `{"data":{}}`, nethttp.StatusBadRequest},
		{"unknown domain", "/api/festival/events/1/notify", env.token, `{"kind":"x"}`, nethttp.StatusBadRequest},
		{"unauthenticated", "/api/conference/events/1/notify", "", `{"kind":"x"}`, nethttp.StatusUnauthorized},
		{"bad token", "/api/conference/events/1/notify", "garbage", `{"kind":"x"}`, nethttp.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := env.notify(t, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestNotify_ReachesOnlyTargetRoom(t *testing.T) {
	env := newTestEnv(t)
	target := env.join(t, "/ws/conference/1")
	sameIDOtherDomain := env.join(t, "/ws/tradeshow/1")

	resp := env.notify(t, "/api/conference/events/1/notify", env.token, `{"kind":"element_update","data":{"action":"created"}}`)
	require.Equal(t, nethttp.StatusAccepted, resp.StatusCode)

	assert.Equal(t, map[string]any{
		"type": "element_update",
		"data": map[string]any{"action": "created"},
	}, readFrame(t, target))
	assertSilent(t, sameIDOtherDomain)
}

func TestNotify_WithoutDataSendsNull(t *testing.T) {
	env := newTestEnv(t)
	conn := env.join(t, "/ws/conference/5")

	resp := env.notify(t, "/api/conference/events/5/notify", env.token, `{"kind":"event_update"}`)
	require.Equal(t, nethttp.StatusAccepted, resp.StatusCode)

	assert.Equal(t, map[string]any{"type": "event_update", "data": nil}, readFrame(t, conn))
}

func TestScheduleAndAssignmentRoutes(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"sessions need auth", nethttp.MethodGet, "/api/conference/events/1/sessions", "", nethttp.StatusUnauthorized},
		{"session patch needs auth", nethttp.MethodPatch, "/api/tradeshow/events/1/sessions/2", "", nethttp.StatusUnauthorized},
		{"seat assignments need auth", nethttp.MethodPost, "/api/conference/events/1/seat-assignments", "", nethttp.StatusUnauthorized},
		{"booth assignments need auth", nethttp.MethodDelete, "/api/tradeshow/events/1/booth-assignments/3", "", nethttp.StatusUnauthorized},
		{"routes need auth", nethttp.MethodGet, "/api/tradeshow/events/1/routes", "", nethttp.StatusUnauthorized},
		{"session in unknown domain", nethttp.MethodGet, "/api/festival/events/1/sessions", env.token, nethttp.StatusBadRequest},
		{"session id must be numeric", nethttp.MethodGet, "/api/conference/events/1/sessions/abc", env.token, nethttp.StatusBadRequest},
		{"guest search is public", nethttp.MethodGet, "/api/conference/events/abc/guests/search?q=ada", "", nethttp.StatusBadRequest},
		{"guest badge is public", nethttp.MethodGet, "/api/qr/conference/1/guests/abc", "", nethttp.StatusBadRequest},
		{"vendor badge is public", nethttp.MethodGet, "/api/qr/tradeshow/abc/vendors/1", "", nethttp.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := nethttp.NewRequest(tt.method, env.server.URL+tt.path, nil)
			require.NoError(t, err)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			resp, err := nethttp.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestHealthAndStats(t *testing.T) {
	env := newTestEnv(t)
	env.join(t, "/ws/conference/1")

	resp, err := nethttp.Get(env.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var health map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, map[string]string{"status": "healthy", "service": "event-planner"}, health)

	resp, err = nethttp.Get(env.server.URL + "/api/realtime/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	var stats map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, map[string]int{"rooms": 1, "connections": 1}, stats)
}

func TestReady(t *testing.T) {
	ok := handlers.ReadinessCheck{Name: "database", Check: func(context.Context) error { return nil }}
	down := handlers.ReadinessCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }}

	env := newTestEnv(t, ok)
	resp, err := nethttp.Get(env.server.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)

	env = newTestEnv(t, ok, down)
	resp, err = nethttp.Get(env.server.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "not ready", body["status"])
	assert.Contains(t, body["error"], "redis")
}
