package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/oops"
	"github.com/urfave/cli/v3"

	"github.com/cinequery/cinequery/internal/config"
	"github.com/cinequery/cinequery/internal/markup"
)

func newAskCommand() *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Answer one question and print the result",
		ArgsUsage: "<query...>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
			},
			&cli.BoolFlag{
				Name:  "html",
				Usage: "Print the rendered HTML instead of raw markup",
			},
			&cli.BoolFlag{
				Name:  "people",
				Usage: "Include related people in the answer",
			},
		},
		Action: askAction,
	}
}

func askAction(ctx context.Context, cmd *cli.Command) error {
	queryText := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if queryText == "" {
		return oops.
			Code("INVALID_ARGS").
			Hint(`Usage: cinequery ask "what's trending this week?"`).
			Errorf("no query given")
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	answer, err := engine.Answer(ctx, queryText, cmd.Bool("people"))
	if err != nil {
		return err
	}

	if cmd.Bool("html") {
		answer = markup.Render(answer)
	}

	fmt.Println(answer)

	return nil
}
