package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/openintent-io/openintent/pkg/events"
)

// streamEventsHandler handles GET /api/v1/streams/events. It serves an
// NDJSON stream: one frame per line, either {"type":"event",...} or a
// {"type":"lag","dropped":n} marker.
func (s *Server) streamEventsHandler(c *echo.Context) error {
	filter, policy, fromSequence, err := parseStreamParams(c)
	if err != nil {
		return err
	}

	sub, err := s.streamBroker.Subscribe(c.Request().Context(), filter, policy, fromSequence)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer sub.Close()

	resp := c.Response()
	resp.Header().Set("Content-Type", "application/x-ndjson")
	resp.Header().Set("Cache-Control", "no-cache")
	resp.WriteHeader(http.StatusOK)

	flusher, _ := resp.(http.Flusher)
	enc := json.NewEncoder(resp)

	for {
		frame, err := sub.Receive(c.Request().Context())
		if err != nil {
			// Client went away, stream closed, or the subscriber was
			// disconnected for falling behind. Nothing more to send.
			if errors.Is(err, io.EOF) || errors.Is(err, events.ErrSlowConsumer) {
				return nil
			}
			return nil
		}
		if err := enc.Encode(frame); err != nil {
			return nil
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// parseStreamParams reads the shared stream query parameters.
func parseStreamParams(c *echo.Context) (events.Filter, events.Policy, int64, error) {
	filter := events.Filter{
		IntentID: c.QueryParam("intent_id"),
		Actor:    c.QueryParam("actor"),
	}
	if v := c.QueryParam("types"); v != "" {
		filter.EventTypes = strings.Split(v, ",")
	}

	policy := events.Policy(c.QueryParam("backpressure"))
	if policy != "" && !policy.Valid() {
		return events.Filter{}, "", 0,
			echo.NewHTTPError(http.StatusBadRequest, "invalid backpressure: must be drop_oldest, block, or disconnect")
	}

	var fromSequence int64
	if v := c.QueryParam("from_sequence"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 1 {
			return events.Filter{}, "", 0,
				echo.NewHTTPError(http.StatusBadRequest, "invalid from_sequence: must be a positive integer")
		}
		fromSequence = n
	}
	return filter, policy, fromSequence, nil
}
