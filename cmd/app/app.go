package main

import (
	"group-ledger/internal/domain"
	"group-ledger/internal/repository"
	"group-ledger/internal/storage"
	"group-ledger/internal/usecase"
)

// app связывает хранилище, репозитории и use case'ы одного процесса
type app struct {
	store   *storage.Storage
	groupUC domain.GroupUseCase
	userUC  domain.UserUseCase
	txUC    domain.TransactionUseCase
}

func newApp() *app {
	store := storage.New()

	// Репозитории
	groupRepo := repository.NewGroupRepository(store)
	userRepo := repository.NewUserRepository(store)
	txRepo := repository.NewTransactionRepository(store)

	// Use Cases
	return &app{
		store:   store,
		groupUC: usecase.NewGroupUseCase(groupRepo),
		userUC:  usecase.NewUserUseCase(userRepo, groupRepo),
		txUC:    usecase.NewTransactionUseCase(userRepo, txRepo, groupRepo),
	}
}

func (a *app) Close() error {
	return a.store.Close()
}
