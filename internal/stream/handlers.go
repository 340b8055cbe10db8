package stream

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, hub *Hub) {
	r.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})

	r.Get("/ws/:attractionId", func(c *fiber.Ctx) error {
		if _, err := strconv.ParseInt(c.Params("attractionId"), 10, 64); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid attraction id")
		}
		return c.Next()
	}, websocket.New(func(c *websocket.Conn) {
		attractionID, _ := strconv.ParseInt(c.Params("attractionId"), 10, 64)
		client := hub.Register(attractionID)

		done := make(chan struct{})
		go func() {
			defer close(done)
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		hub.Unregister(client)
		<-done
	}))
}
