package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/events"
)

// wsHandler upgrades GET /ws to a WebSocket event stream. The client
// opens with a subscribe control message; the server then pushes the
// same frames as the NDJSON stream.
func (s *Server) wsHandler(c *echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	ctx := c.Request().Context()

	msg, err := readClientMessage(ctx, conn)
	if err != nil {
		conn.Close(websocket.StatusPolicyViolation, "expected subscribe message")
		return nil
	}
	if msg.Action != "subscribe" {
		conn.Close(websocket.StatusPolicyViolation, "first message must be subscribe")
		return nil
	}

	filter := events.Filter{
		IntentID:   msg.IntentID,
		EventTypes: msg.EventTypes,
		Actor:      msg.Actor,
	}
	sub, err := s.streamBroker.Subscribe(ctx, filter, events.Policy(msg.Backpressure), msg.FromSequence)
	if err != nil {
		conn.Close(websocket.StatusPolicyViolation, err.Error())
		return nil
	}
	defer sub.Close()

	// The read loop watches for unsubscribe and connection close.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		defer cancel()
		for {
			m, err := readClientMessage(ctx, conn)
			if err != nil {
				return
			}
			if m.Action == "unsubscribe" {
				return
			}
		}
	}()

	for {
		frame, err := sub.Receive(ctx)
		if err != nil {
			if errors.Is(err, events.ErrSlowConsumer) {
				conn.Close(websocket.StatusPolicyViolation, "subscriber queue overflow")
			}
			return nil
		}

		writeCtx, writeCancel := context.WithTimeout(ctx, s.cfg.Stream.WriteTimeout)
		err = writeJSON(writeCtx, conn, frame)
		writeCancel()
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				slog.Debug("WebSocket write failed", "error", err)
			}
			return nil
		}
	}
}

func readClientMessage(ctx context.Context, conn *websocket.Conn) (*events.ClientMessage, error) {
	_, data, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}
	var msg events.ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func writeJSON(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.Write(ctx, websocket.MessageText, data)
}
