package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/aglyzov/go-trie/internal/cmdlogger"
)

const defaultDictName = "trie.toml"

func run(args []string, stdout, stderr io.Writer) int {
	logHandler := cmdlogger.New(stdout, stderr)
	slog.SetDefault(slog.New(logHandler))

	app := &cli.Command{
		Name:      "triedict",
		Usage:     "answers key and prefix queries against a dictionary",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dict",
				Aliases: []string{"d"},
				Value:   defaultDictName,
				Usage:   "path to the TOML dictionary",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug messages",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				logHandler.SetLevel(slog.LevelDebug)
			}

			return ctx, nil
		},
		Commands: []*cli.Command{
			queryCommand(stdout),
			checkCommand(),
		},
	}

	// keep urfave/cli from calling os.Exit on errors that carry an exit code
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := app.Run(context.Background(), args); err != nil {
		cmdlogger.Errorf("%v", err)
	}

	if logHandler.HasErrored() {
		return 1
	}

	return 0
}
