package http

import (
	"log/slog"
	"net/http"
	"time"

	"turtu/internal/pkg/auth"
	"turtu/internal/pkg/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// trackerContextKey is the echo context key holding the request tracker id.
const trackerContextKey = "trackerId"

// Tracker issues a unique tracker id per request. The id travels in the
// request context so persisted log rows can be correlated with the
// response payload that echoed it.
func Tracker() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			trackerID := uuid.NewString()
			c.Set(trackerContextKey, trackerID)

			req := c.Request()
			c.SetRequest(req.WithContext(logging.WithTracker(req.Context(), trackerID)))

			return next(c)
		}
	}
}

// RequestLatency logs method, path, status and duration for every request.
func RequestLatency(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.InfoContext(c.Request().Context(), "Request completed",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(start).String(),
			)

			return err
		}
	}
}

// RequireAuth rejects requests without a valid bearer token.
func RequireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, err := auth.ParseBearer(c.Request().Header.Get(echo.HeaderAuthorization), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, messageResponse{
					Message:   "Invalid or missing token",
					TrackerID: trackerID(c),
				})
			}

			c.Set("principal", principal)
			return next(c)
		}
	}
}

// trackerID reads the tracker id issued by the Tracker middleware.
func trackerID(c echo.Context) string {
	id, _ := c.Get(trackerContextKey).(string)
	return id
}
