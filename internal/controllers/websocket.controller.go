package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Srijan-XI/pcbuild-assist/internal/middleware"
	"github.com/Srijan-XI/pcbuild-assist/internal/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS middleware already constrains browser origins
		return true
	},
}

// GetSessionToken issues the JWT a client presents when opening /ws.
func GetSessionToken(c *gin.Context) {
	token, err := services.GenerateSessionToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"url":        "ws://" + c.Request.Host + "/ws?token=" + token,
		"expires_at": services.AdminTokenExpiry(),
	})
}

// HandleBuildSession validates the session token, upgrades the connection and
// runs a live build session: the client mutates slots, the server
// re-evaluates after every change and pushes the verdict back.
func HandleBuildSession(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if middleware.GlobalSecurityLogger != nil {
			middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "missing session token")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if _, err := services.ValidateSessionToken(token); err != nil {
		if middleware.GlobalSecurityLogger != nil {
			middleware.GlobalSecurityLogger.LogFailedAuth(c.ClientIP(), "invalid session token: "+err.Error())
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}

	sessionID := uuid.NewString()
	session := services.NewBuildSession(sessionID, ws)

	if middleware.GlobalSecurityLogger != nil {
		middleware.GlobalSecurityLogger.LogSessionOpened(c.ClientIP(), sessionID)
	}

	// Greet before the pumps start so teardown cannot race the first send.
	session.Send <- services.SessionMessage{
		Type:      "session_started",
		Data:      gin.H{"session_id": sessionID, "evaluation": session.Evaluate()},
		Timestamp: time.Now(),
	}

	hub := services.GetSessionHub()
	hub.Register(session)

	go readPump(session, hub)
	go writePump(session)
}

// readPump reads slot mutations from the client.
func readPump(session *services.BuildSession, hub *services.SessionHub) {
	defer func() {
		hub.Unregister(session.ID)
		session.Conn.Close()
	}()

	for {
		var msg services.SessionMessage
		if err := session.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Session %s read error: %v", session.ID, err)
			}
			return
		}

		switch msg.Type {
		case "set_slot":
			result, err := session.SetSlot(msg.Slot, msg.ComponentID)
			sendEvaluation(session, result, err)

		case "clear_slot":
			result, err := session.ClearSlot(msg.Slot)
			sendEvaluation(session, result, err)

		case "evaluate":
			sendEvaluation(session, session.Evaluate(), nil)

		case "ping":
			select {
			case session.Send <- services.SessionMessage{Type: "pong", Timestamp: time.Now()}:
			case <-session.Close:
				return
			default:
				return
			}

		default:
			log.Printf("[WS] Session %s: unknown message type %q", session.ID, msg.Type)
			select {
			case session.Send <- services.SessionMessage{
				Type:      "error",
				Error:     "unknown message type: " + msg.Type,
				Timestamp: time.Now(),
			}:
			case <-session.Close:
				return
			}
		}
	}
}

func sendEvaluation(session *services.BuildSession, result interface{}, err error) {
	msg := services.SessionMessage{Timestamp: time.Now()}
	if err != nil {
		msg.Type = "error"
		msg.Error = err.Error()
	} else {
		msg.Type = "evaluation"
		msg.Data = result
	}

	select {
	case session.Send <- msg:
	case <-session.Close:
	default:
		// Send channel full, drop the update
	}
}

// writePump writes queued messages to the client.
func writePump(session *services.BuildSession) {
	defer session.Conn.Close()

	for {
		select {
		case msg := <-session.Send:
			if err := session.Conn.WriteJSON(msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("[WS] Session %s write error: %v", session.ID, err)
				}
				return
			}

		case <-session.Close:
			session.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
