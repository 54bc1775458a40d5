package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/lumen/pkg/types"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	// sendBuffer bounds how many States a slow client may fall behind by
	// before older ones are dropped.
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// streamClient pushes State values from the store to one websocket.
type streamClient struct {
	conn *websocket.Conn
	send chan types.State
	done chan struct{}
	log  logrus.FieldLogger
}

// handleStream upgrades the request and subscribes the connection to the
// store. The first message is the current State.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.requestLog(r).WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &streamClient{
		conn: conn,
		send: make(chan types.State, sendBuffer),
		done: make(chan struct{}),
		log:  s.requestLog(r).WithField("client_id", newID()),
	}

	unsubscribe := s.svc.Store().Subscribe(c.push)
	c.log.Info("stream client connected")

	go c.writePump(s.quit)
	go func() {
		c.readPump()
		unsubscribe()
		c.log.Info("stream client disconnected")
	}()
}

// push queues v without blocking the store. When the client has fallen
// behind, the oldest queued State is dropped; the newest always survives.
func (c *streamClient) push(v types.State) {
	select {
	case c.send <- v:
		return
	default:
	}
	select {
	case <-c.send:
	default:
	}
	select {
	case c.send <- v:
	default:
	}
}

// readPump discards client messages and watches for disconnects. It
// closes done when the connection ends.
func (c *streamClient) readPump() {
	defer func() {
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.log.WithError(err).Debug("close after read failed")
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("stream read error")
			}
			return
		}
	}
}

// writePump sends queued States and pings until the client leaves or quit
// is closed.
func (c *streamClient) writePump(quit <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case v := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(v); err != nil {
				c.log.WithError(err).Debug("write state failed")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}

		case <-quit:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			c.conn.WriteMessage(websocket.CloseMessage, msg)
			return

		case <-c.done:
			return
		}
	}
}
