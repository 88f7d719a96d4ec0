package ws_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhao/promptmaster/internal/domain/event"
	"github.com/linhao/promptmaster/internal/transport/ws"
)

func newWSServer(t *testing.T) (*ws.Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	r := gin.New()
	hub.Register(r.Group("/ws"))

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, hub *ws.Hub, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// The handler registers the connection just after the upgrade; wait for
	// it so broadcasts cannot race past an empty hub.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("connection never registered with the hub")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) event.Event {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got event.Event
	require.NoError(t, json.Unmarshal(data, &got))
	return got
}

func TestBroadcast_DeliversEvent(t *testing.T) {
	hub, url := newWSServer(t)
	conn := dial(t, hub, url)

	hub.Broadcast(event.New(event.TypeConfigUpdated))

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	got := readEvent(t, conn)
	assert.Equal(t, event.TypeConfigUpdated, got.Type)
}

func TestBroadcast_ConcurrentCallers(t *testing.T) {
	hub, url := newWSServer(t)
	conn := dial(t, hub, url)

	// The library debouncer and config updates push from separate
	// goroutines. Writes to one connection must be serialized.
	const perType = 20
	var wg sync.WaitGroup
	for i := 0; i < perType; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.Broadcast(event.New(event.TypeLibraryChanged))
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast(event.New(event.TypeConfigUpdated))
		}()
	}
	wg.Wait()

	var libs, cfgs int
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	for i := 0; i < 2*perType; i++ {
		switch readEvent(t, conn).Type {
		case event.TypeLibraryChanged:
			libs++
		case event.TypeConfigUpdated:
			cfgs++
		}
	}
	assert.Equal(t, perType, libs)
	assert.Equal(t, perType, cfgs)
}

func TestHub_DropsClosedConnections(t *testing.T) {
	hub, url := newWSServer(t)
	conn := dial(t, hub, url)

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed connection was never dropped")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
