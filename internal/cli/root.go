// Package cli wires configuration, logging and localisation together and
// starts the terminal UI.
package cli

import (
	"errors"
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Ch3mestry/bioTest/internal/clipboard"
	"github.com/Ch3mestry/bioTest/internal/config"
	"github.com/Ch3mestry/bioTest/internal/i18n"
	"github.com/Ch3mestry/bioTest/internal/logging"
	"github.com/Ch3mestry/bioTest/internal/sequence"
	"github.com/Ch3mestry/bioTest/internal/tui"
)

type rootOptions struct {
	configFile string
	first      string
	second     string
	fastaFile  string
}

// runProgram starts the Bubble Tea program; tests replace it.
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// NewRootCommand builds the biotest command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "biotest",
		Short:         "Compare two amino acid sequences side by side",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/biotest/biotest.yaml)")
	flags.String("language", "", "interface language (ru, en)")
	flags.String("log-file", "", "write logs to this file")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	cmd.Flags().StringVar(&opts.first, "seq1", "", "prefill the first sequence")
	cmd.Flags().StringVar(&opts.second, "seq2", "", "prefill the second sequence")
	cmd.Flags().StringVar(&opts.fastaFile, "fasta", "", "prefill both sequences from the first two records of a FASTA file")
	cmd.MarkFlagsMutuallyExclusive("fasta", "seq1")
	cmd.MarkFlagsMutuallyExclusive("fasta", "seq2")

	cmd.AddCommand(newConfigCommand(opts))
	return cmd
}

// Execute runs the root command.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// setup loads configuration and initialises logging and localisation. The
// returned function releases the log file.
func setup(cmd *cobra.Command, opts *rootOptions) (config.Config, func(), error) {
	cfg, err := config.Load(cmd, opts.configFile)
	if err != nil {
		return cfg, nil, fmt.Errorf("loading config: %w", err)
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return cfg, nil, fmt.Errorf("setting up logging: %w", err)
	}

	if err := i18n.Init(cfg.Language); err != nil {
		closer.Close()
		return cfg, nil, fmt.Errorf("loading translations: %w", err)
	}
	if !slices.Contains(i18n.Languages(), cfg.Language) {
		logging.Warnf("no translation for language %q, using %s", cfg.Language, i18n.DefaultLanguage)
	}
	return cfg, func() { closer.Close() }, nil
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	cfg, cleanup, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	first, second := opts.first, opts.second
	if opts.fastaFile != "" {
		first, second, err = sequence.LoadPair(opts.fastaFile)
		if err != nil {
			return err
		}
	}

	if !clipboard.Available() {
		logging.Warnf("no clipboard utility found; copying will have no effect")
	}
	logging.Infof("starting, language=%s", cfg.Language)

	err = runProgram(tui.NewApp(first, second, clipboard.System{}))
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Errorf("ui stopped: %v", err)
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
