// Package command разбирает текстовые команды и вызывает операции учёта.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"group-ledger/internal/domain"

	"github.com/sirupsen/logrus"
)

// Сообщения об ошибках в том виде, в каком их видит пользователь
var errorMessages = []struct {
	err     error
	message string
}{
	{ErrSyntax, "Incorrect syntax"},
	{ErrTooManyArguments, "Too many arguments!"},
	{ErrLineTooLong, "Line too long"},
	{domain.ErrGroupNotFound, "Group does not exist"},
	{domain.ErrGroupAlreadyExists, "Group already exists"},
	{domain.ErrUserAlreadyExists, "User already exists"},
	{domain.ErrUserNotFound, "User does not exist"},
	{domain.ErrEmptyGroup, "User list empty"},
	{domain.ErrInvalidNumber, "Incorrect number format"},
}

// ErrorMessage возвращает текст ошибки для вывода пользователю.
func ErrorMessage(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return err.Error()
}

type handlerFunc func(ctx context.Context, args []string) error

type command struct {
	arity int
	run   handlerFunc
}

// Dispatcher выполняет одну команду за вызов. Результат пишется в out,
// ошибки - в errOut строкой "Error: <сообщение>".
type Dispatcher struct {
	groupUseCase domain.GroupUseCase
	userUseCase  domain.UserUseCase
	txUseCase    domain.TransactionUseCase
	out          io.Writer
	errOut       io.Writer
	logger       *logrus.Logger
	commands     map[string]command
}

// NewDispatcher создает новый экземпляр Dispatcher.
func NewDispatcher(
	groupUseCase domain.GroupUseCase,
	userUseCase domain.UserUseCase,
	txUseCase domain.TransactionUseCase,
	out, errOut io.Writer,
	logger *logrus.Logger,
) *Dispatcher {
	d := &Dispatcher{
		groupUseCase: groupUseCase,
		userUseCase:  userUseCase,
		txUseCase:    txUseCase,
		out:          out,
		errOut:       errOut,
		logger:       logger,
	}

	d.commands = map[string]command{
		"add_group":    {arity: 1, run: d.addGroup},
		"list_groups":  {arity: 0, run: d.listGroups},
		"add_user":     {arity: 2, run: d.addUser},
		"remove_user":  {arity: 2, run: d.removeUser},
		"list_users":   {arity: 1, run: d.listUsers},
		"user_balance": {arity: 2, run: d.userBalance},
		"under_paid":   {arity: 1, run: d.underPaid},
		"add_xct":      {arity: 3, run: d.addTransaction},
		"recent_xct":   {arity: 2, run: d.recentTransactions},
	}
	return d
}

// Execute выполняет разобранную команду. Возвращает true, если это quit.
// Пустой список аргументов ничего не делает.
func (d *Dispatcher) Execute(ctx context.Context, args []string) (quit bool) {
	if len(args) == 0 {
		return false
	}
	if args[0] == "quit" && len(args) == 1 {
		return true
	}

	logEntry := d.logger.WithFields(logrus.Fields{
		"operation": args[0],
		"args":      args[1:],
	})

	cmd, ok := d.commands[args[0]]
	if !ok || len(args)-1 != cmd.arity {
		d.Fail(ErrSyntax)
		logEntry.Debug("Unknown command")
		return false
	}

	if err := cmd.run(ctx, args[1:]); err != nil {
		d.Fail(err)
		logEntry.WithError(err).Debug("Command failed")
		return false
	}

	logEntry.Debug("Command executed")
	return false
}

// Fail печатает ошибку в поток ошибок.
func (d *Dispatcher) Fail(err error) {
	fmt.Fprintf(d.errOut, "Error: %s\n", ErrorMessage(err))
}

func (d *Dispatcher) addGroup(ctx context.Context, args []string) error {
	_, err := d.groupUseCase.AddGroup(ctx, args[0])
	return err
}

func (d *Dispatcher) listGroups(ctx context.Context, _ []string) error {
	empty := true
	for name := range d.groupUseCase.ListGroups(ctx) {
		empty = false
		fmt.Fprintf(d.out, "%s \n", name)
	}
	if empty {
		fmt.Fprintf(d.out, "No groups have been added yet \n")
	}
	return nil
}

func (d *Dispatcher) addUser(ctx context.Context, args []string) error {
	_, err := d.userUseCase.AddUser(ctx, args[0], args[1])
	return err
}

func (d *Dispatcher) removeUser(ctx context.Context, args []string) error {
	_, err := d.userUseCase.RemoveUser(ctx, args[0], args[1])
	return err
}

func (d *Dispatcher) listUsers(ctx context.Context, args []string) error {
	users, err := d.userUseCase.ListUsers(ctx, args[0])
	if err != nil {
		return err
	}

	if len(users) == 0 {
		fmt.Fprintf(d.out, "There are no users in group %s. \n", args[0])
		return nil
	}

	fmt.Fprintf(d.out, "Name \t Balance \n")
	for _, u := range users {
		fmt.Fprintf(d.out, "%s \t %.2f \n", u.Name, u.Balance)
	}
	return nil
}

func (d *Dispatcher) userBalance(ctx context.Context, args []string) error {
	balance, err := d.userUseCase.UserBalance(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "User \t Balance \n")
	fmt.Fprintf(d.out, "%s \t %.2f \n", args[1], balance)
	return nil
}

func (d *Dispatcher) underPaid(ctx context.Context, args []string) error {
	users, err := d.userUseCase.UnderPaid(ctx, args[0])
	if err != nil {
		return err
	}

	for _, u := range users {
		fmt.Fprintf(d.out, "%s \n", u.Name)
	}
	return nil
}

// addTransaction сначала ищет группу, потом разбирает сумму:
// для несуществующей группы сообщается именно об этом.
func (d *Dispatcher) addTransaction(ctx context.Context, args []string) error {
	if _, err := d.groupUseCase.FindGroup(ctx, args[0]); err != nil {
		return err
	}

	amount, err := ParseAmount(args[2])
	if err != nil {
		return err
	}

	_, err = d.txUseCase.AddTransaction(ctx, args[0], args[1], amount)
	return err
}

func (d *Dispatcher) recentTransactions(ctx context.Context, args []string) error {
	if _, err := d.groupUseCase.FindGroup(ctx, args[0]); err != nil {
		return err
	}

	limit, err := ParseCount(args[1])
	if err != nil {
		return err
	}

	txs, err := d.txUseCase.RecentTransactions(ctx, args[0], limit)
	if err != nil {
		return err
	}

	if len(txs) == 0 {
		fmt.Fprintln(d.out)
		return nil
	}

	fmt.Fprintf(d.out, "The last %d transactions were: \n", limit)
	for _, tx := range txs {
		fmt.Fprintf(d.out, "Transaction #%d, User: %s, Transaction amount: %.2f \n", tx.Seq, tx.UserName, tx.Amount)
	}
	return nil
}
