package handler

import (
	"net/http"

	"group-ledger/api"
	"group-ledger/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// UserHandler обрабатывает HTTP-запросы, связанные с участниками групп.
type UserHandler struct {
	*BaseHandler
	userUseCase domain.UserUseCase
}

// NewUserHandler создает новый экземпляр UserHandler.
func NewUserHandler(userUseCase domain.UserUseCase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger),
		userUseCase: userUseCase,
	}
}

// bindUserRef разбирает тело запроса. При ошибке ответ 400 уже отправлен.
func (h *UserHandler) bindUserRef(c echo.Context, operation string) (api.UserRef, *logrus.Entry, error) {
	logEntry := h.logRequest(c, operation)

	var req api.UserRef
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return req, logEntry, c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	return req, logEntry.WithFields(logrus.Fields{
		"group_name": req.GroupName,
		"user_name":  req.UserName,
	}), nil
}

// PostUserAdd добавляет в группу пользователя с нулевым балансом.
func (h *UserHandler) PostUserAdd(c echo.Context) error {
	req, logEntry, err := h.bindUserRef(c, "add_user")
	if c.Response().Committed {
		return err
	}
	logEntry.Info("Adding user")

	user, err := h.userUseCase.AddUser(c.Request().Context(), req.GroupName, req.UserName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to add user")
	}

	logEntry.Info("User added successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user": toAPIUser(user),
	})
}

// PostUserRemove удаляет пользователя вместе со всеми его транзакциями.
func (h *UserHandler) PostUserRemove(c echo.Context) error {
	req, logEntry, err := h.bindUserRef(c, "remove_user")
	if c.Response().Committed {
		return err
	}
	logEntry.Info("Removing user")

	purged, err := h.userUseCase.RemoveUser(c.Request().Context(), req.GroupName, req.UserName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to remove user")
	}

	logEntry.WithField("purged_transactions", purged).Info("User removed successfully")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"group_name":          req.GroupName,
		"user_name":           req.UserName,
		"purged_transactions": purged,
	})
}

// GetUserList возвращает пользователей группы по возрастанию баланса.
func (h *UserHandler) GetUserList(c echo.Context, params api.GetUserListParams) error {
	logEntry := h.logRequest(c, "list_users").WithField("group_name", params.GroupName)

	users, err := h.userUseCase.ListUsers(c.Request().Context(), params.GroupName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to list users")
	}

	logEntry.WithField("users_count", len(users)).Info("Users listed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"group_name": params.GroupName,
		"users":      toAPIUsers(users),
	})
}

// GetUserBalance возвращает текущий баланс пользователя.
func (h *UserHandler) GetUserBalance(c echo.Context, params api.GetUserBalanceParams) error {
	logEntry := h.logRequest(c, "user_balance").WithFields(logrus.Fields{
		"group_name": params.GroupName,
		"user_name":  params.UserName,
	})

	balance, err := h.userUseCase.UserBalance(c.Request().Context(), params.GroupName, params.UserName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get user balance")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"user": api.User{
			UserName:  params.UserName,
			GroupName: params.GroupName,
			Balance:   balance,
		},
	})
}

// GetUserUnderPaid возвращает всех пользователей с минимальным балансом.
func (h *UserHandler) GetUserUnderPaid(c echo.Context, params api.GetUserUnderPaidParams) error {
	logEntry := h.logRequest(c, "under_paid").WithField("group_name", params.GroupName)

	users, err := h.userUseCase.UnderPaid(c.Request().Context(), params.GroupName)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to find under-paid users")
	}

	logEntry.WithField("users_count", len(users)).Info("Under-paid users found")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"group_name": params.GroupName,
		"users":      toAPIUsers(users),
	})
}
