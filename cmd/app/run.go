package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"group-ledger/internal/command"
	"group-ledger/internal/config"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type runCmd struct {
	cfg    config.Config
	logger *logrus.Logger
	prompt string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "process ledger commands from a file or standard input" }
func (*runCmd) Usage() string {
	return `run [-prompt <prompt>] [<file>]

  Reads commands one per line and executes them against an in-memory ledger.
  With <file> the commands are read from it and echoed (batch mode),
  otherwise they are read from standard input. The session ends on quit
  or at the end of input.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.prompt, "prompt", "", "Prompt printed before each command (defaults to PROMPT).")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	var (
		in    io.Reader = os.Stdin
		batch bool
	)
	if f.NArg() == 1 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			c.logger.WithError(err).WithField("file", f.Arg(0)).Debug("Failed to open batch file")
			fmt.Fprintln(os.Stderr, "Error: Error opening file")
			return subcommands.ExitFailure
		}
		defer file.Close()
		in, batch = file, true
	}

	prompt := c.prompt
	if prompt == "" {
		prompt = c.cfg.Prompt
	}

	a := newApp()
	defer a.Close()

	dispatcher := command.NewDispatcher(a.groupUC, a.userUC, a.txUC, os.Stdout, os.Stderr, c.logger)
	session := command.NewSession(dispatcher, in, os.Stdout, prompt, batch, c.logger)

	if err := session.Run(ctx); err != nil {
		c.logger.WithError(err).Error("Session failed")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
