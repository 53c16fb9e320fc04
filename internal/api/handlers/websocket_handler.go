// server/internal/api/handlers/websocket_handler.go
package handlers

import (
	"log"
	"net/http"

	"sanjivani-agritech-api-server/internal/socket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	Hub *socket.Hub
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is already policed by the CORS layer; the socket carries
	// admin-only notifications and the route sits behind Authenticate.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an admin dashboard connection and keeps it registered
// until the peer goes away. The server only pushes; inbound frames are
// drained and discarded.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.Hub.Register(conn)

	go func() {
		defer func() {
			h.Hub.Unregister(conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
