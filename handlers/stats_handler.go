package handlers

import (
	"log"

	"github.com/beautyexpress/salon_backend/stats"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns the latest aggregator snapshot. The validated
// flag tells the dashboard whether the startup validation pass finished, so
// it can show a "syncing" badge instead of trusting zeroed figures.
func GetDashboardStats(c *fiber.Ctx) error {
	snapshot, validated := stats.Default.Snapshot()
	return c.JSON(fiber.Map{
		"stats":     snapshot,
		"validated": validated,
	})
}

// StatsSocket streams snapshot updates to a dashboard websocket. The
// current snapshot is pushed immediately on connect, then every change the
// aggregator publishes until the socket closes.
func StatsSocket(conn *websocket.Conn) {
	if isAdmin, _ := conn.Locals("is_admin").(bool); !isAdmin {
		conn.Close()
		return
	}

	updates := stats.Default.Subscribe()
	defer func() {
		stats.Default.Unsubscribe(updates)
		conn.Close()
	}()

	snapshot, _ := stats.Default.Snapshot()
	if err := conn.WriteJSON(snapshot); err != nil {
		return
	}

	// Drain the socket so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(snapshot); err != nil {
				log.Printf("Stats socket write failed: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
