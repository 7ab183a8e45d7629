package core

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

// ServeWatch exposes a store subscription as a server-sent event stream.
// Each event carries the full current ordered list (or the error). The
// observer is deregistered when the client goes away; the heartbeat exists
// to detect that even while the collection is quiet.
func ServeWatch[T Record, R any](c *fiber.Ctx, store *Store[T], toResponse func([]T) []R) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	ch := make(chan Snapshot[T], 8)
	unsub := store.Subscribe(context.Background(), func(s Snapshot[T]) {
		select {
		case ch <- s:
		default: // slow consumer: drop, the next snapshot supersedes this one
		}
	})

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer unsub()
		heartbeat := time.NewTicker(15 * time.Second)
		defer heartbeat.Stop()

		for {
			select {
			case snap := <-ch:
				var payload []byte
				if snap.Err != nil {
					payload, _ = json.Marshal(fiber.Map{"error": snap.Err.Error()})
				} else {
					payload, _ = json.Marshal(fiber.Map{"items": toResponse(snap.Items)})
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	}))
	return nil
}
