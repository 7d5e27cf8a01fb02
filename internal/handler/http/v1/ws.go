package v1

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// @Summary Stream form updates
// @Description Websocket stream of notices and form state. The current state is sent first.
// @Tags Reports
// @Param id path string true "Session ID"
// @Success 101 "Switching Protocols"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /reports/sessions/{id}/stream [get]
func (h *Handler) streamSession(c *gin.Context) {
	log := h.logger.WithField("method", "streamSession").WithField("id", c.Param("id"))
	session, ok := h.lookupSession(c, "streamSession")
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}
	defer conn.Close()

	events, unsubscribe := session.Subscribe()
	defer unsubscribe()

	// Читаем входящие кадры только для pong и обнаружения закрытия
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(wsPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(StreamEvent{Session: ViewToResponse(session.View())}); err != nil {
		log.WithError(err).Debug("Failed to write initial state")
		return
	}

	for {
		select {
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				// Форма закрыта
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(EventToStream(ev)); err != nil {
				log.WithError(err).Debug("Failed to write event")
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// originChecker разрешает websocket с тех же origin, что и CORS
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 || slices.Contains(allowed, "*") {
			return true
		}
		return slices.Contains(allowed, origin)
	}
}
