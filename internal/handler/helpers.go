package handler

import (
	"errors"
	"net/http"

	"group-ledger/api"
	"group-ledger/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPIUser(user *domain.User) api.User {
	return api.User{
		UserName:  user.Name,
		GroupName: user.GroupName,
		Balance:   user.Balance,
	}
}

func toAPIUsers(users []*domain.User) []api.User {
	result := make([]api.User, len(users))
	for i, user := range users {
		result[i] = toAPIUser(user)
	}
	return result
}

func toAPITransactions(txs []*domain.Transaction) []api.Transaction {
	result := make([]api.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = api.Transaction{
			Seq:      tx.Seq,
			UserName: tx.UserName,
			Amount:   tx.Amount,
		}
	}
	return result
}

func toErrorResponse(code, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = api.ErrorResponseErrorCode(code)
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(httpErr.Code, httpErr.Message)
}

func getHTTPStatusCode(err error) int {
	switch {
	// Conflict errors (409)
	case errors.Is(err, domain.ErrGroupAlreadyExists),
		errors.Is(err, domain.ErrUserAlreadyExists),
		errors.Is(err, domain.ErrEmptyGroup):
		return http.StatusConflict

	// Not Found errors (404)
	case errors.Is(err, domain.ErrGroupNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidGroupName),
		errors.Is(err, domain.ErrInvalidUserName),
		errors.Is(err, domain.ErrInvalidNumber):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
