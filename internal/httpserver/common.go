package httpserver

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/kmazurek/orders-api/internal/events"
	"github.com/kmazurek/orders-api/internal/logging"
)

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("param %s is not a positive integer", name)
	}
	return uint(id), nil
}

// publish sends a lifecycle event and only logs on failure; the request
// already succeeded by the time this runs. The producer bounds delivery time.
func publish(c echo.Context, p *events.Producer, topic, key string, event map[string]any) {
	ctx := c.Request().Context()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "topic", topic, "error", err)
	}
}
