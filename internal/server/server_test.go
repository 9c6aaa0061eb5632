package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/padbot/padbot/internal/core/events/bus"
	"github.com/padbot/padbot/internal/core/observability/log"
	"github.com/padbot/padbot/internal/core/sim"
)

type frame struct {
	Type    string                 `json:"type"`
	State   string                 `json:"state"`
	Walking bool                   `json:"walking"`
	Error   string                 `json:"error"`
	Poses   map[string]poseMessage `json:"poses"`
}

func newTestGateway(t *testing.T) (*sim.World, *websocket.Conn) {
	t.Helper()

	events := bus.New()
	world, err := sim.NewWorld(sim.DefaultConfig(), nil, events, nil)
	require.NoError(t, err)

	g, err := NewGateway("127.0.0.1:0", world.Queue(), world, events, log.New(log.LevelError))
	require.NoError(t, err)

	srv := httptest.NewServer(g.Handler())
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })

	return world, conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var f frame
	require.NoError(t, conn.ReadJSON(&f))
	return f
}

func TestInitialStatusFrame(t *testing.T) {
	_, conn := newTestGateway(t)

	f := readFrame(t, conn)
	require.Equal(t, "status", f.Type)
	require.Equal(t, "start", f.State)
	require.False(t, f.Walking)
	require.Contains(t, f.Poses, "robot")
	require.Contains(t, f.Poses, "finish-pad")
}

func TestIntentRoundTripAndBroadcast(t *testing.T) {
	world, conn := newTestGateway(t)
	readFrame(t, conn) // initial status

	require.NoError(t, conn.WriteJSON(intentMessage{Intent: "toggle_move"}))

	require.Eventually(t, func() bool {
		return world.Queue().Len() == 1
	}, 2*time.Second, 5*time.Millisecond, "intent never reached the queue")

	world.Tick(1.0)

	// Tick publishes motion, game, and pose changes; collect frames until the
	// walking status lands.
	deadline := time.Now().Add(2 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "no walking status frame")
		f := readFrame(t, conn)
		if f.State == "walking" && f.Walking {
			require.InDelta(t, 0.1, f.Poses["robot"].Z, 1e-9)
			return
		}
	}
}

func TestMalformedIntentGetsErrorFrame(t *testing.T) {
	_, conn := newTestGateway(t)
	readFrame(t, conn) // initial status

	require.NoError(t, conn.WriteJSON(intentMessage{Intent: "fly"}))

	f := readFrame(t, conn)
	require.Equal(t, "error", f.Type)
	require.Contains(t, f.Error, "unknown intent")
}

func TestCollisionBroadcast(t *testing.T) {
	world, conn := newTestGateway(t)
	readFrame(t, conn)

	world.Queue().Push(sim.IntentToggleMove)
	world.Tick(0.016)
	world.ResolveCollision(sim.CollisionEvent{A: world.Robot(), B: sim.NameID("block")})

	deadline := time.Now().Add(2 * time.Second)
	for {
		require.True(t, time.Now().Before(deadline), "no block_hit status frame")
		f := readFrame(t, conn)
		if f.State == "block_hit" {
			return
		}
	}
}
