package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const banner = "Welcome to Buxfer!\nPlease input command:\n"

// Session читает команды построчно и передаёт их диспетчеру.
type Session struct {
	dispatcher *Dispatcher
	in         io.Reader
	out        io.Writer
	prompt     string
	// echo печатает каждую прочитанную строку (пакетный режим)
	echo   bool
	logger *logrus.Logger
}

// NewSession создает сессию. В пакетном режиме (echo) строки повторяются в out.
func NewSession(dispatcher *Dispatcher, in io.Reader, out io.Writer, prompt string, echo bool, logger *logrus.Logger) *Session {
	return &Session{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
		prompt:     prompt,
		echo:       echo,
		logger:     logger,
	}
}

// Run обрабатывает ввод до quit, конца ввода или отмены ctx.
func (s *Session) Run(ctx context.Context) error {
	reader := bufio.NewReader(s.in)

	fmt.Fprint(s.out, banner)
	fmt.Fprint(s.out, s.prompt)

	lines := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := reader.ReadString('\n')
		if raw == "" && err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.WithField("lines", lines).Debug("End of input")
				return nil
			}
			return fmt.Errorf("failed to read command: %w", err)
		}
		lines++

		if s.echo {
			fmt.Fprint(s.out, raw)
		}

		if s.process(ctx, raw) {
			s.logger.WithField("lines", lines).Debug("Quit received")
			return nil
		}
		fmt.Fprint(s.out, s.prompt)
	}
}

// process выполняет одну строку ввода. Возвращает true для quit.
func (s *Session) process(ctx context.Context, raw string) bool {
	line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
	if len(line) > MaxLineLength {
		s.dispatcher.Fail(ErrLineTooLong)
		return false
	}

	args, err := Tokenize(line)
	if err != nil {
		s.dispatcher.Fail(err)
		return false
	}

	return s.dispatcher.Execute(ctx, args)
}
