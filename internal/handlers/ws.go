package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/studentwork-dev/crewbase/internal/types"
)

var (
	boardClients   = make(map[string]map[*websocket.Conn]bool)
	boardClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// BroadcastBoardRefresh tells every viewer of a board to reload it.
// Called after a post, reply or deletion lands on the board.
func BroadcastBoardRefresh(boardID string) {
	boardClientsMu.RLock()
	clients, exists := boardClients[boardID]
	if !exists || len(clients) == 0 {
		boardClientsMu.RUnlock()
		return
	}

	// Copy the connections so the lock is not held while writing
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	boardClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]string{
			"type":     "refresh",
			"message":  "Board updated",
			"board_id": boardID,
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			boardClientsMu.Lock()
			if clients, exists := boardClients[boardID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(boardClients, boardID)
				}
			}
			boardClientsMu.Unlock()
			conn.Close()
		}
	}
}

func BoardWebSocket(c *gin.Context) {
	boardID := c.Param("boardId")

	if boardID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Board ID is required"})
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	boardClientsMu.Lock()
	if boardClients[boardID] == nil {
		boardClients[boardID] = make(map[*websocket.Conn]bool)
	}
	boardClients[boardID][conn] = true
	boardClientsMu.Unlock()

	defer func() {
		boardClientsMu.Lock()

		if clients, exists := boardClients[boardID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(boardClients, boardID)
			}
		}

		boardClientsMu.Unlock()
		conn.Close()

		log.Printf("WebSocket connection closed for board %s", boardID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":     "connected",
		"message":  "WebSocket connection established",
		"board_id": boardID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for board %s: %v", boardID, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for board %s: %v", boardID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for board %s: %v", boardID, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for board %s: %v", boardID, err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			log.Printf("Received message from client on board %s: %s", boardID, string(message))
		}
	}
}
