// Package cli implements the ifctool command-line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/andreyvit/ifc"
	"github.com/andreyvit/ifc/archive"
	"github.com/andreyvit/ifc/entities"
	"github.com/andreyvit/ifc/internal/config"
)

// app holds what the commands share: flags, loaded config and the logger.
type app struct {
	configPath string
	verbose    bool

	cfg         *config.Config
	resolvedCfg string
	logger      *slog.Logger
	stderr      io.Writer
}

// NewRootCommand builds the command tree. Output goes to the command's
// configured writers, so tests can capture it.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ifctool",
		Short: "Inspect, reformat and archive IFC models",
		Long: `ifctool reads ISO-10303-21 (STEP) files with an IFC4 schema.

It re-renders them in canonical form, reports record statistics and
unresolvable references, and keeps parsed models in a local archive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ~/.config/ifctool/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log parser and archive activity")

	root.AddCommand(
		a.fmtCommand(),
		a.statsCommand(),
		a.checkCommand(),
		a.archiveCommand(),
		a.demoCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "ifctool:", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg, a.resolvedCfg = cfg, path
	if cfg.Verbose {
		a.verbose = true
	}

	a.stderr = cmd.ErrOrStderr()
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) logf(format string, args ...any) {
	a.logger.Debug(fmt.Sprintf(format, args...))
}

func (a *app) docOptions() ifc.Options {
	return ifc.Options{Logf: a.logf, Verbose: a.verbose}
}

func (a *app) openArchive() (*archive.Archive, error) {
	path := a.cfg.ArchivePath(a.resolvedCfg)
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opening archive", "path", path)
	return archive.Open(path, entities.Schema, archive.Options{
		Logf:    a.logf,
		Verbose: a.verbose,
	})
}
