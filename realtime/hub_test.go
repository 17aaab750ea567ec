package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(nil)
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		room := r.URL.Query().Get("room")
		if room == "" {
			room = RoomLeague
		}
		hub.Attach(r.Context(), conn, room)
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_PublishReachesLeagueRoom(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.ClientCount(RoomLeague) == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("MATCH_UPDATED", map[string]int{"matchId": 4})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
		RoomID  string         `json:"roomId"`
	}
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, "MATCH_UPDATED", msg.Type)
	assert.Equal(t, 4, msg.Payload["matchId"])
	assert.Equal(t, RoomLeague, msg.RoomID)
}

func TestHub_OtherRoomsAreIsolated(t *testing.T) {
	hub, srv := startHub(t)
	other := dial(t, srv, "?room=side")
	require.Eventually(t, func() bool { return hub.ClientCount("side") == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish("TOURNAMENT_RESET", nil)
	hub.BroadcastToRoom("side", Message{Type: "PING"})

	other.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := other.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"PING"`)
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv, "")
	require.Eventually(t, func() bool { return hub.ClientCount(RoomLeague) == 1 }, time.Second, 10*time.Millisecond)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount(RoomLeague) == 0 }, 2*time.Second, 10*time.Millisecond)
}
