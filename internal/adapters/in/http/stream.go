package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"quickbite/internal/core/application/usecases/queries"
	"quickbite/internal/core/domain/model/kernel"
	"quickbite/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// streamBuffer sizes the per-connection event channel. An order's lifecycle
// produces a handful of snapshots, so the buffer never fills in practice;
// it exists so the broadcaster's synchronous fanout is decoupled from the
// connection's write loop.
const streamBuffer = 16

// StreamOrder handles GET /api/v1/orders/:id/stream - the streaming gateway.
//
// On attach the current snapshot is looked up; an unknown order is rejected
// with a 404 envelope and no stream is opened. Otherwise the response
// becomes a server-sent event stream: the current snapshot is emitted as the
// first event, then every published snapshot for the order follows as its
// own complete event. The stream ends when the client disconnects or right
// after a terminal-status snapshot has been written. Exactly one
// unsubscribe happens per subscribe, on every exit path.
func (s *Server) StreamOrder(ctx echo.Context) error {
	id, err := kernel.OrderIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusNotFound, kindOrderNotFound, "Order not found")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, http.StatusNotFound, kindOrderNotFound, "Order not found")
	}

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	// Disable proxy buffering so events reach the client per write.
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	events := make(chan *order.Order, streamBuffer)
	sub := s.broadcaster.Subscribe(id, func(published *order.Order) error {
		select {
		case events <- published:
			return nil
		default:
			return fmt.Errorf("stream buffer full, dropping update for %s", published.ID())
		}
	})
	defer s.broadcaster.Unsubscribe(sub)

	if err = writeEvent(w, snapshot); err != nil {
		return nil
	}
	if snapshot.Status().IsTerminal() {
		return nil
	}

	clientGone := ctx.Request().Context().Done()
	for {
		select {
		case <-clientGone:
			return nil
		case published := <-events:
			if err = writeEvent(w, published); err != nil {
				return nil
			}
			if published.Status().IsTerminal() {
				return nil
			}
		}
	}
}

// writeEvent frames one snapshot as an SSE data event and flushes it.
func writeEvent(w *echo.Response, snapshot *order.Order) error {
	payload, err := json.Marshal(toOrderResponse(snapshot))
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	w.Flush()
	return nil
}
