package controllers

import (
	"net/http"
	"time"

	"github.com/cskyle2026/Diabetes/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	Hub *services.RealtimeHub
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Stream upgrades to a websocket and feeds the client session events
// until it disconnects.
func (rc *RealtimeController) Stream(c *gin.Context) {
	userID := c.GetUint("userID")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.WSClient{UserID: userID, Conn: conn}
	rc.Hub.Register(client)

	// keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := client.Write(websocket.PingMessage, nil); err != nil {
				rc.Hub.Unregister(client)
				return
			}
		}
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.Hub.Unregister(client)
			return
		}
	}
}
