package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"notekw/internal/config"
	"notekw/internal/logger"
	"notekw/internal/tui"
)

type rootOptions struct {
	configPath string
	logLevel   string
	cfg        *config.AppConfig
}

// NewRootCmd builds the notekw command tree. The root command loads note
// files, groups them and opens the interactive shell.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "notekw [files...]",
		Short:         "Keyword extraction and topic grouping for short notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			svc, err := buildService(opts.cfg)
			if err != nil {
				return err
			}
			batch, err := loadNotes(args)
			if err != nil {
				return err
			}
			groups, err := svc.Ingest(batch)
			if err != nil {
				return fmt.Errorf("ingest failed: %w", err)
			}
			m := tui.New(svc, summarize(groups))
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("failed to run TUI: %w", err)
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to YAML config file (uses ~/.config/notekw/config.yaml if not provided)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override log level (debug, info, warn, error, none)")

	cmd.AddCommand(
		newFitCmd(opts),
		newExtractCmd(opts),
		newClusterCmd(opts),
		newNoiseCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() error {
	var (
		cfg *config.AppConfig
		err error
	)
	if o.configPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(o.configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := logger.Init(cfg.Log.File, cfg.Log.Level); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	o.cfg = cfg
	return nil
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
