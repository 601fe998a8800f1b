package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware пишет одну запись на каждый обработанный запрос.
// Проверки /health логируются на уровне debug.
func LoggingMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Отдаём ошибку echo сразу, чтобы в логе был итоговый статус
				c.Error(err)
			}

			status := c.Response().Status
			entry := logger.WithFields(logrus.Fields{
				"method":    c.Request().Method,
				"uri":       c.Request().URL.RequestURI(),
				"status":    status,
				"latency":   time.Since(start),
				"bytes_out": c.Response().Size,
				"ip":        c.RealIP(),
			})

			if err != nil {
				entry = entry.WithField("error", err.Error())
			}

			switch {
			case status >= 500:
				entry.Error("Server error")
			case status >= 400:
				entry.Warn("Client error")
			case c.Path() == "/health":
				entry.Debug("Health check")
			default:
				entry.Info("Request processed")
			}

			return nil
		}
	}
}
