package realtime

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"eventPlanner/internal/errs"
)

type mockConn struct {
	id       string
	mu       sync.Mutex
	received [][]byte
	closed   bool
	sendErr  error
}

func (m *mockConn) ID() string { return m.id }

func (m *mockConn) Send(frame []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errs.ErrConnectionClosed
	}
	if m.sendErr != nil {
		return m.sendErr
	}
	m.received = append(m.received, frame)
	return nil
}

func (m *mockConn) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockConn) getReceived() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.received))
	copy(out, m.received)
	return out
}

func (m *mockConn) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func decode(t *testing.T, frame []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(frame, &out))
	return out
}
