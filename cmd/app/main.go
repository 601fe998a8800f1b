package main

import (
	"context"
	"flag"
	"os"
	"path"

	"group-ledger/internal/config"

	"github.com/google/subcommands"
)

func main() {
	// Конфиг
	cfg, envErr := config.LoadConfig()

	// Логгер пишет в stderr, stdout остаётся под вывод команд
	logger := cfg.NewLogger(os.Stderr)
	if envErr != nil {
		logger.Debugf(".env not loaded: %v", envErr)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal(err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&runCmd{cfg: cfg, logger: logger}, "")
	commander.Register(&serveCmd{cfg: cfg, logger: logger}, "")

	flag.Parse()

	ctx := context.Background()

	// Без подкоманды работаем как интерактивная сессия
	if flag.NArg() == 0 {
		run := &runCmd{cfg: cfg, logger: logger}
		os.Exit(int(run.Execute(ctx, flag.NewFlagSet("run", flag.ExitOnError))))
	}

	os.Exit(int(commander.Execute(ctx)))
}
