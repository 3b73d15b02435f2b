package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLayer(t *testing.T, mr *miniredis.Miniredis) *RedisLayer {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	layer := NewRedisLayer(client, "test_updates", nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, layer.Start(ctx))
	t.Cleanup(func() { layer.Close() })
	return layer
}

func TestRedisLayer_DeliversAcrossProcesses(t *testing.T) {
	mr := miniredis.RunT(t)
	first := newRedisLayer(t, mr)
	second := newRedisLayer(t, mr)

	room := NewRoom(DomainConference, "evt1")
	a := &mockConn{id: "a"}
	b := &mockConn{id: "b"}
	elsewhere := &mockConn{id: "elsewhere"}
	first.Join(room, a)
	second.Join(room, b)
	second.Join(NewRoom(DomainConference, "evt2"), elsewhere)

	relay := NewRelay(first)
	require.NoError(t, relay.Publish(context.Background(), room, "element_update", map[string]string{"id": "t1"}))

	for _, c := range []*mockConn{a, b} {
		require.Eventually(t, func() bool { return len(c.getReceived()) == 1 }, 2*time.Second, 10*time.Millisecond, c.id)
		assert.JSONEq(t, `{"type":"element_update","data":{"id":"t1"}}`, string(c.getReceived()[0]))
	}
	assert.Never(t, func() bool { return len(elsewhere.getReceived()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func TestRedisLayer_MembershipIsLocal(t *testing.T) {
	mr := miniredis.RunT(t)
	layer := newRedisLayer(t, mr)
	room := NewRoom(DomainTradeshow, "evt9")
	c := &mockConn{id: "c"}

	layer.Join(room, c)
	assert.Len(t, layer.Members(room), 1)
	layer.Leave(room, c)
	assert.Empty(t, layer.Members(room))
}

func TestRedisLayer_SendToFailsWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	layer := NewRedisLayer(client, "", nil)
	mr.Close()

	err := layer.SendTo(context.Background(), NewRoom(DomainConference, "evt1"), []byte(`{}`))
	assert.Error(t, err)
}

func TestRedisLayer_CloseWithoutStart(t *testing.T) {
	layer := NewRedisLayer(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "", nil)
	assert.NoError(t, layer.Close())
}
