package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/chiron/pkg/cli/config"
	"github.com/secmon-lab/chiron/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var knowledgeCfg config.Knowledge

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate a knowledge pack file",
		Flags:   knowledgeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if knowledgeCfg.FilePath() == "" {
				return goerr.New("--knowledge-file is required for validation")
			}

			entries, err := knowledgeCfg.Load()
			if err != nil {
				return goerr.Wrap(err, "knowledge pack validation failed")
			}

			logger.Info("Knowledge pack validation passed",
				"file", knowledgeCfg.FilePath(),
				"entry_count", len(entries),
			)
			for _, entry := range entries {
				logger.Info("Knowledge entry validated",
					"id", entry.ID,
					"topic_count", len(entry.Topics),
				)
			}
			return nil
		},
	}
}
