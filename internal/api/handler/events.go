package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kiliclub/clubdesk/internal/bus"
	"github.com/kiliclub/clubdesk/internal/model"
)

// keepaliveInterval is how often an SSE comment is sent to hold the
// connection open through proxies
const keepaliveInterval = 15 * time.Second

// EventsHandler streams change notifications over SSE so clients can
// re-read collections when they change
type EventsHandler struct {
	bus *bus.Bus
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(b *bus.Bus) *EventsHandler {
	return &EventsHandler{bus: b}
}

// Stream handles GET /api/v1/events. The optional topic query parameter
// restricts the stream to one collection.
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, NewInternalError())
		return
	}

	var sub *bus.Subscription
	if topic := r.URL.Query().Get("topic"); topic != "" {
		sub = h.bus.Subscribe(model.Topic(topic))
	} else {
		sub = h.bus.Subscribe()
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepalive := time.NewTicker(keepaliveInterval)
	defer keepalive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case topic, ok := <-sub.C:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: change\ndata: %s\n\n", topic)
			flusher.Flush()
		case <-keepalive.C:
			fmt.Fprint(w, ": keepalive\n\n")
			flusher.Flush()
		}
	}
}
