package handler

import (
	"net/http"
	"slices"

	"group-ledger/api"
	"group-ledger/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// GroupHandler обрабатывает HTTP-запросы для управления группами
type GroupHandler struct {
	*BaseHandler
	groupUseCase domain.GroupUseCase
}

// NewGroupHandler создает новый экземпляр GroupHandler
func NewGroupHandler(groupUseCase domain.GroupUseCase, logger *logrus.Logger) *GroupHandler {
	return &GroupHandler{
		BaseHandler:  NewBaseHandler(logger),
		groupUseCase: groupUseCase,
	}
}

// PostGroupAdd обрабатывает создание новой пустой группы
func (h *GroupHandler) PostGroupAdd(c echo.Context) error {
	logEntry := h.logRequest(c, "add_group")

	var req api.PostGroupAddJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithField("group_name", req.GroupName)
	logEntry.Info("Adding group")

	group, err := h.groupUseCase.AddGroup(c.Request().Context(), req.GroupName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to add group")
	}

	logEntry.Info("Group added successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"group": api.Group{GroupName: group.Name},
	})
}

// GetGroupList обрабатывает получение имён групп в порядке создания
func (h *GroupHandler) GetGroupList(c echo.Context) error {
	logEntry := h.logRequest(c, "list_groups")

	names := slices.Collect(h.groupUseCase.ListGroups(c.Request().Context()))
	if names == nil {
		names = []string{}
	}

	logEntry.WithField("groups_count", len(names)).Info("Groups listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"groups": names,
	})
}
