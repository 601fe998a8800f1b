package handler

import (
	"group-ledger/api"
	"group-ledger/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*GroupHandler
	*UserHandler
	*TransactionHandler
}

func NewAPIHandler(
	groupUseCase domain.GroupUseCase,
	userUseCase domain.UserUseCase,
	txUseCase domain.TransactionUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		GroupHandler:       NewGroupHandler(groupUseCase, logger),
		UserHandler:        NewUserHandler(userUseCase, logger),
		TransactionHandler: NewTransactionHandler(txUseCase, logger),
	}
}
