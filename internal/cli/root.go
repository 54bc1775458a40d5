// Package cli implements the lumen command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/logger"
	"github.com/mesh-intelligence/lumen/internal/paths"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state loaded before every command.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool

	cfg Config
	log *logrus.Logger
}

// NewRootCmd creates the top-level "lumen" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "lumen",
		Short: "Tabletop companion: characters, stats and generated weapons",
		Long: "Lumen tracks characters and their stats, keeps a catalog of weapon parts,\n" +
			"and generates weapons from it. Run \"lumen serve\" for the HTTP API.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $(CWD)/.lumen)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.lumen-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newInitCmd())
	root.AddCommand(a.newServeCmd())
	root.AddCommand(a.newStateCmd())
	root.AddCommand(a.newCharacterCmd())
	root.AddCommand(a.newStatCmd())
	root.AddCommand(a.newPartCmd())
	root.AddCommand(a.newWeaponCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode classifies err: bad input and missing entities are user errors,
// everything else is a system error.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case errors.Is(err, types.ErrNotFound),
		errors.Is(err, types.ErrAlreadyExists),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidStatType),
		errors.Is(err, types.ErrInvalidPartType),
		errors.Is(err, types.ErrInvalidRarity),
		errors.Is(err, types.ErrInvalidCompany),
		errors.Is(err, types.ErrInvalidLevel),
		errors.Is(err, types.ErrInvalidWeaponID),
		errors.Is(err, types.ErrMissingPart),
		errors.Is(err, types.ErrMissingCurve):
		return exitUserError
	default:
		return exitSysError
	}
}

// load reads .env, config.yaml and builds the logger. The version command
// needs none of it.
func (a *app) load(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// resolveDataDir returns the data directory following the precedence
// --data-dir > LUMEN_DATA_DIR > config.yaml data_dir > $(CWD)/.lumen-db.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.dataDir, a.cfg.DataDir)
}
