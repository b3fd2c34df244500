package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/labstack/echo/v4"
)

// RequestMetrics counts requests by method and response status
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error has not reached the HTTPErrorHandler yet, so the
				// response status still holds the pre-error value.
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			name := fmt.Sprintf(`http_requests_total{method=%q,status="%d"}`, c.Request().Method, status)
			metrics.GetOrCreateCounter(name).Inc()

			return err
		}
	}
}
