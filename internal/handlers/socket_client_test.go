package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventPlanner/internal/errs"
	"eventPlanner/internal/realtime"
)

func TestSocketClientSend(t *testing.T) {
	room := realtime.NewRoom(realtime.DomainConference, "1")
	client := NewSocketClient("c1", room, nil, nil, SocketOptions{SendBuffer: 2})

	require.NoError(t, client.Send([]byte("one")))
	require.NoError(t, client.Send([]byte("two")))
	assert.ErrorIs(t, client.Send([]byte("three")), errs.ErrSendBufferFull)

	assert.Equal(t, "one", string(<-client.send))
	assert.NoError(t, client.Send([]byte("three")))
}

func TestSocketClientSendAfterClose(t *testing.T) {
	client := NewSocketClient("c1", realtime.NewRoom(realtime.DomainTradeshow, ""), nil, nil, SocketOptions{})

	require.NoError(t, client.Close())
	require.NoError(t, client.Close())
	assert.ErrorIs(t, client.Send([]byte("late")), errs.ErrConnectionClosed)
}

func TestSocketOptionsDefaults(t *testing.T) {
	opts := SocketOptions{}.withDefaults()
	assert.Equal(t, 256, opts.SendBuffer)
	assert.Equal(t, int64(64*1024), opts.MaxMessageSize)
	assert.Less(t, opts.pingPeriod(), opts.PongWait)
}
