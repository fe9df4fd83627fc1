package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/aglyzov/go-trie/internal/cmdlogger"
	"github.com/aglyzov/go-trie/internal/dictfile"
	"github.com/aglyzov/go-trie/trie"
)

var errNoKeys = errors.New("no keys to query, --help for usage information")

const (
	formatText     = "text"
	formatMarkdown = "markdown"
)

func queryCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "look up keys and their longest matches",
		ArgsUsage: "<key> [key...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "format",
				Value: formatText,
				Usage: "output format: text or markdown",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			keys := cmd.Args().Slice()
			if len(keys) == 0 {
				return errNoKeys
			}

			format := cmd.String("format")
			if format != formatText && format != formatMarkdown {
				return fmt.Errorf("unsupported format %q", format)
			}

			tr, err := loadTrie(cmd.String("dict"))
			if err != nil {
				return err
			}

			printResults(stdout, tr, keys, format)

			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "load the dictionary and report its size",
		Action: func(_ context.Context, cmd *cli.Command) error {
			_, err := loadTrie(cmd.String("dict"))

			return err
		},
	}
}

func loadTrie(path string) (*trie.Trie[string], error) {
	file, err := dictfile.Load(path)
	if err != nil {
		return nil, err
	}

	tr, err := file.Build()
	if err != nil {
		return nil, err
	}

	cmdlogger.Infof("Loaded %d keys (%d nodes) from %s", tr.Len(), tr.Nodes(), path)

	return tr, nil
}

func printResults(w io.Writer, tr *trie.Trie[string], keys []string, format string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Key", "Contains", "Prefix", "Value", "Longest Prefix", "Longest Key"})

	for _, key := range keys {
		value := "-"
		if val, ok := tr.Get(key); ok {
			value = strconv.Quote(val)
		}

		tw.AppendRow(table.Row{
			key,
			tr.Contains(key),
			tr.ContainsPrefix(key),
			value,
			tr.LongestPrefix(key),
			tr.LongestKey(key),
		})
	}

	if format == formatMarkdown {
		tw.RenderMarkdown()
		return
	}

	tw.SetStyle(table.StyleLight)
	tw.Render()
}
