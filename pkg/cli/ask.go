package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/agent"
	"github.com/secmon-lab/chiron/pkg/cli/config"
	"github.com/secmon-lab/chiron/pkg/domain/model"
	"github.com/secmon-lab/chiron/pkg/domain/types"
	"github.com/secmon-lab/chiron/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdAsk() *cli.Command {
	var knowledgeCfg config.Knowledge

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Ask the agent one question and print the reply",
		ArgsUsage: "[message...]",
		Flags:     knowledgeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if text == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return goerr.Wrap(err, "failed to read message from stdin")
				}
				text = strings.TrimSpace(string(data))
			}
			if text == "" {
				return goerr.New("message is required: pass it as arguments or on stdin")
			}

			knowledgeSvc, err := knowledgeCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load knowledge pack")
			}

			uc := usecase.New(agent.New(agent.WithKnowledge(knowledgeSvc)))
			reply, err := uc.Chat.Chat(ctx, model.History{
				{Role: types.RoleUser, Content: text},
			})
			if err != nil {
				return goerr.Wrap(err, "chat failed")
			}

			printReply(os.Stdout, reply)
			return nil
		},
	}
}

func printReply(w io.Writer, reply *model.Reply) {
	content := color.New(color.FgHiWhite)
	stepTitle := color.New(color.FgHiCyan)
	faint := color.New(color.Faint)

	content.Fprintln(w, reply.Content)

	if len(reply.Steps) > 0 {
		fmt.Fprintln(w)
		for _, step := range reply.Steps {
			stepTitle.Fprintf(w, "- %s: ", step.Title)
			fmt.Fprintln(w, step.Content)
		}
	}

	if len(reply.Suggestions) > 0 {
		fmt.Fprintln(w)
		faint.Fprintln(w, "Try next:")
		for _, s := range reply.Suggestions {
			faint.Fprintf(w, "  - %s\n", s)
		}
	}
}
