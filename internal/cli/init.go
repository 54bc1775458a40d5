package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) newInitCmd() *cobra.Command {
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize lumen storage",
		Long: "Create the configuration and data directories, create the database\n" +
			"and load the built-in weapon parts and damage curves.",
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			seeded := false
			if !noSeed {
				if seeded, err = backend.SeedCatalog(); err != nil {
					return fmt.Errorf("seed catalog: %w", err)
				}
			}
			a.log.WithField("path", backend.Path()).Debug("storage initialized")

			result := map[string]any{
				"config_dir": a.configDir,
				"database":   backend.Path(),
				"seeded":     seeded,
			}
			return a.emit(cmd, result, func(w io.Writer) {
				fmt.Fprintf(w, "lumen initialized in %s\n", backend.Path())
				if seeded {
					fmt.Fprintln(w, "built-in parts and curves loaded")
				}
			})
		},
	}

	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "skip loading the built-in parts and curves")
	return cmd
}
