package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRelay(t *testing.T) string {
	t.Helper()
	relay := NewRelayServer()
	go relay.Loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/play", relay.HandleWS())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/play"
}

func dialRelay(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readOne(t *testing.T, conn *websocket.Conn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	return string(payload)
}

func expectSilence(t *testing.T, conn *websocket.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(200*time.Millisecond)))
	_, payload, err := conn.ReadMessage()
	require.Error(t, err, "unexpected frame: %s", payload)
}

func TestRelayFanOut(t *testing.T) {
	url := startRelay(t)
	a := dialRelay(t, url)
	b := dialRelay(t, url)
	c := dialRelay(t, url)

	// Give the relay a moment to register all three peers.
	time.Sleep(50 * time.Millisecond)

	msg := `{"type":"playerMove","playerId":"p1","x":10,"y":20,"room":3}`
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(msg)))

	assert.Equal(t, msg, readOne(t, b))
	assert.Equal(t, msg, readOne(t, c))

	// Each recipient gets exactly one copy, the sender gets none.
	expectSilence(t, b)
	expectSilence(t, a)
}

func TestRelayForwardsVerbatim(t *testing.T) {
	url := startRelay(t)
	a := dialRelay(t, url)
	b := dialRelay(t, url)
	time.Sleep(50 * time.Millisecond)

	// The relay performs no validation; garbage passes through untouched.
	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte("not json at all")))
	assert.Equal(t, "not json at all", readOne(t, b))
}

func TestRelaySinglePeerNoEcho(t *testing.T) {
	url := startRelay(t)
	a := dialRelay(t, url)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"playerMove"}`)))
	expectSilence(t, a)
}

func TestRelayDisconnectRemovesPeer(t *testing.T) {
	url := startRelay(t)
	a := dialRelay(t, url)
	b := dialRelay(t, url)
	c := dialRelay(t, url)
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, c.Close())
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, a.WriteMessage(websocket.TextMessage, []byte(`{"type":"playerLeft","playerId":"p3"}`)))
	assert.Equal(t, `{"type":"playerLeft","playerId":"p3"}`, readOne(t, b))
}
