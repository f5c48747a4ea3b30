// Package gateway feeds player events from websocket connections into the arena.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bloops-games/colorparty/internal/arena"
	"github.com/bloops-games/colorparty/internal/logging"
	"github.com/bloops-games/colorparty/internal/match"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Sender queues events for the arena goroutine.
type Sender interface {
	Send(ctx context.Context, ev interface{}) error
}

func NewHandler(ctx context.Context, engine Sender) *Handler {
	return &Handler{
		ctx:    ctx,
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type Handler struct {
	ctx      context.Context
	engine   Sender
	upgrader websocket.Upgrader
}

// ServeHTTP joins the player named by the name query parameter for the lifetime of the connection.
// A client keeps its results across connections by passing the id from its first welcome back
// in the id query parameter.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(h.ctx).Named("gateway.ServeHTTP")
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	id, err := playerID(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warnf("upgrade failed for %s: %v", name, err)
		return
	}
	defer conn.Close()

	c := newClient(h.ctx, id, name)
	done := make(chan struct{})
	defer close(done)
	go h.write(conn, c, done)

	c.out <- serverMessage{Type: TypeWelcome, ID: c.ID().String()}
	if err := h.engine.Send(h.ctx, match.Join{Controller: c}); err != nil {
		logger.Errorf("join %s: %v", name, err)
		return
	}
	logger.Infof("%s connected as %s", name, c.ID())

	defer func() {
		if err := h.engine.Send(h.ctx, match.Quit{ID: c.ID()}); err != nil {
			logger.Warnf("quit %s: %v", name, err)
		}
		logger.Infof("%s disconnected", name)
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			logger.Debugf("discarding malformed message from %s: %v", name, err)
			continue
		}

		ev, ok := h.event(c, msg)
		if !ok {
			continue
		}
		if err := h.engine.Send(h.ctx, ev); err != nil {
			logger.Warnf("send %T for %s: %v", ev, name, err)
			return
		}
	}
}

// event turns a client message into a match event, a move also updates the mirror.
func (h *Handler) event(c *client, msg clientMessage) (interface{}, bool) {
	logger := logging.FromContext(h.ctx).Named("gateway.event")
	switch msg.Type {
	case TypeMove:
		to := arena.Vec3{X: msg.X, Y: msg.Y, Z: msg.Z}
		c.Memory.Teleport(to)
		if msg.Look != nil {
			c.Look(*msg.Look)
		}
		return match.Move{ID: c.ID(), To: to}, true
	case TypeInteract:
		action, err := parseAction(msg.Action)
		if err != nil {
			logger.Debugf("interact from %s: %v", c.Name(), err)
			return nil, false
		}
		return match.Interact{ID: c.ID(), Action: action, Block: msg.Block, Slot: msg.Slot}, true
	default:
		logger.Debugf("unknown message type %q from %s", msg.Type, c.Name())
		return nil, false
	}
}

func playerID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(raw)
}

func (h *Handler) write(conn *websocket.Conn, c *client, done <-chan struct{}) {
	logger := logging.FromContext(h.ctx).Named("gateway.write")
	for {
		select {
		case <-done:
			return
		case msg := <-c.out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(msg); err != nil {
				logger.Debugf("write to %s: %v", c.Name(), err)
				return
			}
		}
	}
}
