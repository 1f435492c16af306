package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/javacachava/Pizza-Brava-sub000/kds"
	"github.com/javacachava/Pizza-Brava-sub000/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSHandler upgrades a kitchen display client to websocket and keeps
// the connection registered until it drops.
func KDSHandler(c *gin.Context) {
	role := c.DefaultQuery("role", "kitchen")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("kds upgrade failed: %v", err)
		return
	}

	kds.RegisterClient(conn, role)
	utils.InfoLogger.Printf("kds client connected (role=%s)", role)

	defer kds.UnregisterClient(conn)
	for {
		// clients only listen; drain until the connection closes
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
