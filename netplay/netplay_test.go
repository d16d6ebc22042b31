package netplay

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/wolfchase/model"
	"github.com/zucenko/wolfchase/server"
)

func startRelay(t *testing.T) string {
	t.Helper()
	relay := server.NewRelayServer()
	go relay.Loop()

	mux := http.NewServeMux()
	mux.HandleFunc("/play", relay.HandleWS())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/play"
}

func pollFor(t *testing.T, n *Network, wait time.Duration) (model.Message, bool) {
	t.Helper()
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		if m, ok := n.Poll(); ok {
			return m, true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return model.Message{}, false
}

func TestDialFallsBackToLocalMode(t *testing.T) {
	n := Dial(Config{RelayURL: "ws://127.0.0.1:9/play", DialTimeout: 200 * time.Millisecond})
	assert.True(t, n.LocalMode())
	assert.Len(t, n.LocalId, 36)

	// All operations are harmless no-ops offline.
	n.Send(model.PlayerMove(model.NewPlayer(n.LocalId, "ann", model.Colors[0])))
	_, ok := n.Poll()
	assert.False(t, ok)
	n.Leave()
}

func TestDialGeneratesUniqueIdentity(t *testing.T) {
	a := Dial(Config{RelayURL: "ws://127.0.0.1:9/play", DialTimeout: 100 * time.Millisecond})
	b := Dial(Config{RelayURL: "ws://127.0.0.1:9/play", DialTimeout: 100 * time.Millisecond})
	assert.NotEqual(t, a.LocalId, b.LocalId)
}

func TestNetworkExchange(t *testing.T) {
	url := startRelay(t)
	cfg := Config{RelayURL: url, DialTimeout: 2 * time.Second}

	a := Dial(cfg)
	b := Dial(cfg)
	require.False(t, a.LocalMode())
	require.False(t, b.LocalMode())
	defer a.Leave()
	defer b.Leave()
	time.Sleep(50 * time.Millisecond)

	p := model.NewPlayer(a.LocalId, "ann", model.Colors[0])
	p.X, p.Y, p.Room = 12, 34, 5
	a.Send(model.PlayerJoined(p))

	m, ok := pollFor(t, b, 2*time.Second)
	require.True(t, ok, "peer never received the join")
	assert.Equal(t, model.MsgPlayerJoined, m.Type)
	assert.Equal(t, a.LocalId, m.PlayerId)
	assert.Equal(t, "ann", m.Name)
	assert.Equal(t, 12.0, m.X)
	assert.Equal(t, 5, m.Room)

	// The sender never hears its own broadcast.
	_, ok = pollFor(t, a, 200*time.Millisecond)
	assert.False(t, ok)
}

func TestLeaveDeliversPlayerLeft(t *testing.T) {
	url := startRelay(t)
	cfg := Config{RelayURL: url, DialTimeout: 2 * time.Second}

	a := Dial(cfg)
	b := Dial(cfg)
	defer b.Leave()
	time.Sleep(50 * time.Millisecond)

	a.Leave()
	m, ok := pollFor(t, b, 2*time.Second)
	require.True(t, ok)
	assert.Equal(t, model.MsgPlayerLeft, m.Type)
	assert.Equal(t, a.LocalId, m.PlayerId)
}

func TestParseConfigDefaults(t *testing.T) {
	_ = os.Unsetenv("WOLFCHASE_RELAY_URL")
	_ = os.Unsetenv("WOLFCHASE_DIAL_TIMEOUT")

	cfg, err := ParseConfig()
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:8080/play", cfg.RelayURL)
	assert.Equal(t, 2*time.Second, cfg.DialTimeout)
}
