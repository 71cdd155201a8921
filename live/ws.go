package live

import (
	"log"
	"net/http"

	"saaj/middleware"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// OrderFeed upgrades an admin connection and streams order events until the
// client goes away. The token rides on the query string since browsers cannot
// set headers on websocket dials.
func OrderFeed(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		token := r.URL.Query().Get("token")
		claims, err := middleware.ValidateJWT("Bearer " + token)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		isAdmin := false
		for _, role := range claims.Role {
			if role == "admin" {
				isAdmin = true
				break
			}
		}
		if !isAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("live: upgrade error:", err)
			return
		}

		events, cancel := hub.Subscribe()
		defer cancel()
		defer conn.Close()

		// drain reads so close frames are processed
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		for msg := range events {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}
