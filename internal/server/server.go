package server

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/padbot/padbot/internal/core/events/bus"
	"github.com/padbot/padbot/internal/core/observability/log"
	"github.com/padbot/padbot/internal/core/sim"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The demo UI is served from anywhere during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StatusSource provides the session snapshot shown to UI clients. It must be
// called from the simulation goroutine only; the gateway respects that by
// reading it inside bus handlers and caching the result.
type StatusSource interface {
	Snapshot() sim.Status
}

type client struct {
	id     string
	conn   *websocket.Conn
	sendMu sync.Mutex
}

func (c *client) send(v any) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Gateway bridges UI clients and the simulation. Inbound websocket frames
// become queued intents; state changes published on the bus fan out to every
// connected client as status frames. The gateway never mutates simulation
// state directly.
type Gateway struct {
	addr   string
	queue  *sim.IntentQueue
	status StatusSource
	events bus.EventBus
	log    log.Log

	mu      sync.Mutex
	clients map[string]*client
	last    statusMessage

	server *http.Server
	subs   []bus.Subscription
}

// NewGateway wires a gateway to the world's queue and event bus. It seeds
// the cached status frame from source, so it must be constructed before the
// simulation loop starts ticking.
func NewGateway(addr string, queue *sim.IntentQueue, source StatusSource, events bus.EventBus, logger log.Log) (*Gateway, error) {
	g := &Gateway{
		addr:    addr,
		queue:   queue,
		status:  source,
		events:  events,
		log:     logger,
		clients: make(map[string]*client),
		last:    statusFrame(source.Snapshot()),
	}
	for _, eventType := range []string{sim.EventGameState, sim.EventMotionState, sim.EventPoses} {
		sub, err := events.Subscribe(eventType, g.onStateEvent)
		if err != nil {
			g.unsubscribe()
			return nil, err
		}
		g.subs = append(g.subs, sub)
	}
	return g, nil
}

// Handler returns the HTTP handler serving the websocket endpoint.
func (g *Gateway) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.handleWebSocket)
	return mux
}

// Run serves the websocket endpoint until the context is cancelled.
func (g *Gateway) Run(ctx context.Context) error {
	g.server = &http.Server{Addr: g.addr, Handler: g.Handler()}

	errCh := make(chan error, 1)
	go func() {
		g.log.Info("gateway listening", log.String("addr", g.addr))
		if err := g.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		g.shutdown()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		g.shutdown()
		return err
	}
}

func (g *Gateway) shutdown() {
	g.unsubscribe()

	g.mu.Lock()
	for _, c := range g.clients {
		_ = c.conn.Close()
	}
	g.clients = make(map[string]*client)
	g.mu.Unlock()

	if g.server != nil {
		_ = g.server.Shutdown(context.Background())
	}
}

func (g *Gateway) unsubscribe() {
	for _, s := range g.subs {
		_ = g.events.Unsubscribe(s)
	}
	g.subs = nil
}

// onStateEvent runs in the simulation goroutine. It refreshes the cached
// status frame and pushes it to every client.
func (g *Gateway) onStateEvent(bus.Event) error {
	frame := statusFrame(g.status.Snapshot())

	g.mu.Lock()
	g.last = frame
	targets := make([]*client, 0, len(g.clients))
	for _, c := range g.clients {
		targets = append(targets, c)
	}
	g.mu.Unlock()

	for _, c := range targets {
		if err := c.send(frame); err != nil {
			g.log.Warn("drop unreachable client", log.String("client", c.id), log.Error(err))
			g.removeClient(c.id)
		}
	}
	return nil
}

func (g *Gateway) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.Warn("websocket upgrade failed", log.Error(err))
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}

	g.mu.Lock()
	g.clients[c.id] = c
	initial := g.last
	g.mu.Unlock()

	g.log.Info("client connected", log.String("client", c.id))

	if err = c.send(initial); err != nil {
		g.log.Warn("initial status send failed", log.String("client", c.id), log.Error(err))
		g.removeClient(c.id)
		_ = conn.Close()
		return
	}

	go g.readLoop(c)
}

// readLoop turns inbound frames into queued intents until the client goes
// away. Malformed frames get an error reply instead of a disconnect.
func (g *Gateway) readLoop(c *client) {
	defer func() {
		g.removeClient(c.id)
		_ = c.conn.Close()
		g.log.Info("client disconnected", log.String("client", c.id))
	}()

	for {
		var msg intentMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		in, err := sim.ParseIntent(msg.Intent)
		if err != nil {
			if sendErr := c.send(errorFrame(err)); sendErr != nil {
				return
			}
			continue
		}
		g.queue.Push(in)
	}
}

func (g *Gateway) removeClient(id string) {
	g.mu.Lock()
	delete(g.clients, id)
	g.mu.Unlock()
}
