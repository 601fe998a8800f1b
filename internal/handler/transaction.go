package handler

import (
	"net/http"

	"group-ledger/api"
	"group-ledger/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// TransactionHandler обрабатывает HTTP-запросы для журнала транзакций
type TransactionHandler struct {
	*BaseHandler
	txUseCase domain.TransactionUseCase
}

// NewTransactionHandler создает новый экземпляр TransactionHandler
func NewTransactionHandler(txUseCase domain.TransactionUseCase, logger *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{
		BaseHandler: NewBaseHandler(logger),
		txUseCase:   txUseCase,
	}
}

// PostTransactionAdd применяет сумму к балансу пользователя
func (h *TransactionHandler) PostTransactionAdd(c echo.Context) error {
	logEntry := h.logRequest(c, "add_transaction")

	var req api.PostTransactionAddJSONBody
	if err := c.Bind(&req); err != nil {
		logEntry.WithError(err).Warn("Failed to bind request")
		return c.JSON(http.StatusBadRequest, toErrorResponse("INVALID_REQUEST", err.Error()))
	}

	logEntry = logEntry.WithFields(logrus.Fields{
		"group_name": req.GroupName,
		"user_name":  req.UserName,
		"amount":     req.Amount,
	})
	logEntry.Info("Adding transaction")

	user, err := h.txUseCase.AddTransaction(c.Request().Context(), req.GroupName, req.UserName, req.Amount)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to add transaction")
	}

	logEntry.WithField("balance", user.Balance).Info("Transaction added successfully")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"user":   toAPIUser(user),
		"amount": req.Amount,
	})
}

// GetTransactionRecent возвращает до limit последних транзакций, новые первыми
func (h *TransactionHandler) GetTransactionRecent(c echo.Context, params api.GetTransactionRecentParams) error {
	logEntry := h.logRequest(c, "recent_transactions").WithFields(logrus.Fields{
		"group_name": params.GroupName,
		"limit":      params.Limit,
	})

	txs, err := h.txUseCase.RecentTransactions(c.Request().Context(), params.GroupName, params.Limit)
	if err != nil {
		return h.respondError(c, logEntry, err, "Failed to get recent transactions")
	}

	logEntry.WithField("transactions_count", len(txs)).Info("Recent transactions retrieved")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"group_name":   params.GroupName,
		"transactions": toAPITransactions(txs),
	})
}
