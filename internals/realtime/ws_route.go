// file: internals/realtime/ws_route.go
package realtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes mounts the change-feed websocket under the given router.
// Clients pick tables with ?tables=forum_posts,forum_comments (empty = all).
func RegisterRoutes(router fiber.Router, hub *Hub) {
	router.Use("/changes", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get("/changes", websocket.New(func(conn *websocket.Conn) {
		var tables []string
		if q := strings.TrimSpace(conn.Query("tables")); q != "" {
			for _, t := range strings.Split(q, ",") {
				if t = strings.TrimSpace(t); t != "" {
					tables = append(tables, t)
				}
			}
		}

		sub := hub.Subscribe(tables)
		defer hub.Unsubscribe(sub)

		// Reader goroutine only to detect close.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(30 * time.Second)
		defer ping.Stop()

		for {
			select {
			case ch, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ch); err != nil {
					return
				}
			case <-ping.C:
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}))
}
