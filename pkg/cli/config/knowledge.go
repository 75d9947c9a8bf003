package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/chiron/pkg/service/knowledge"
	"github.com/urfave/cli/v3"
)

// Knowledge holds CLI flags for the knowledge pack configuration
type Knowledge struct {
	filePath string
}

// Flags returns CLI flags for knowledge configuration
func (x *Knowledge) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "knowledge-file",
			Usage:       "Path to a TOML knowledge pack consulted before the builtin table",
			Category:    "Knowledge",
			Sources:     cli.EnvVars("CHIRON_KNOWLEDGE_FILE"),
			Destination: &x.filePath,
		},
	}
}

func (x Knowledge) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", x.filePath),
	)
}

// FilePath returns the configured knowledge pack path
func (x *Knowledge) FilePath() string {
	return x.filePath
}

// knowledgePack is the TOML shape of an operator-provided knowledge file:
//
//	[[entry]]
//	id = "focus"
//	topics = ["focus", "deep work"]
//	advice = "..."
type knowledgePack struct {
	Entries []knowledgePackEntry `toml:"entry"`
}

type knowledgePackEntry struct {
	ID     string   `toml:"id"`
	Topics []string `toml:"topics"`
	Advice string   `toml:"advice"`
}

// Load reads and validates the knowledge pack file. It returns nil when no
// file is configured.
func (x *Knowledge) Load() ([]*knowledge.Entry, error) {
	if x.filePath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(x.filePath)
	if err != nil {
		return nil, goerr.Wrap(ErrConfigNotFound, "failed to read knowledge pack",
			goerr.V(ConfigPathKey, x.filePath))
	}

	var pack knowledgePack
	if err := toml.Unmarshal(data, &pack); err != nil {
		return nil, goerr.Wrap(ErrInvalidConfig, "failed to parse knowledge pack",
			goerr.V(ConfigPathKey, x.filePath), goerr.V("parse_error", err.Error()))
	}

	seen := make(map[string]bool)
	entries := make([]*knowledge.Entry, 0, len(pack.Entries))
	for i, e := range pack.Entries {
		entry, err := knowledge.NewEntry(e.ID, e.Topics, e.Advice)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid knowledge pack entry",
				goerr.V(ConfigPathKey, x.filePath), goerr.V(EntryIndexKey, i))
		}
		if seen[e.ID] {
			return nil, goerr.Wrap(ErrDuplicateEntryID, "invalid knowledge pack",
				goerr.V(ConfigPathKey, x.filePath), goerr.V(EntryIDKey, e.ID))
		}
		seen[e.ID] = true
		entries = append(entries, entry)
	}

	return entries, nil
}

// Configure builds the knowledge service: pack entries first, builtin
// table behind them.
func (x *Knowledge) Configure() (*knowledge.Service, error) {
	entries, err := x.Load()
	if err != nil {
		return nil, err
	}
	return knowledge.New(knowledge.WithEntries(entries...)), nil
}
