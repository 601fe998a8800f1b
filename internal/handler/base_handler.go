package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"group-ledger/internal/domain"
)

type BaseHandler struct {
	logger *logrus.Logger
}

func NewBaseHandler(logger *logrus.Logger) *BaseHandler {
	return &BaseHandler{
		logger: logger,
	}
}

func (h *BaseHandler) logRequest(c echo.Context, operation string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"operation":  operation,
		"method":     c.Request().Method,
		"path":       c.Request().URL.Path,
		"ip":         c.RealIP(),
		"user_agent": c.Request().UserAgent(),
	})
}

// respondError отдаёт доменную ошибку в формате ErrorResponse.
// Ошибки клиента пишутся в лог с уровнем warn, остальные с уровнем error.
func (h *BaseHandler) respondError(c echo.Context, logEntry *logrus.Entry, err error, msg string) error {
	httpErr, known := domain.ToHTTPError(err)
	if !known {
		logEntry.WithError(err).Error(msg)
		return c.JSON(http.StatusInternalServerError, toErrorResponse("INTERNAL_ERROR", err.Error()))
	}

	logEntry.WithError(err).Warn(msg)
	return c.JSON(getHTTPStatusCode(err), toAPIErrorResponse(httpErr))
}
