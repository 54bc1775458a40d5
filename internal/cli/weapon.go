package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

func (a *app) newWeaponCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weapon",
		Short: "Generate weapons from the part catalog",
	}
	cmd.AddCommand(a.newWeaponGenerateCmd())
	cmd.AddCommand(a.newWeaponBuildCmd())
	return cmd
}

func (a *app) newWeaponGenerateCmd() *cobra.Command {
	var level int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Roll a random weapon for a level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.forgeWeapon(cmd, func(svc *service.Service) (types.State, error) {
				return svc.GenerateWeapon(level)
			})
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "weapon level (0-32)")
	return cmd
}

func (a *app) newWeaponBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <id>",
		Short: "Rebuild a weapon from its hexadecimal id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.forgeWeapon(cmd, func(svc *service.Service) (types.State, error) {
				return svc.BuildWeapon(args[0])
			})
		},
	}
}

func (a *app) forgeWeapon(cmd *cobra.Command, fn func(*service.Service) (types.State, error)) error {
	return a.withService(func(svc *service.Service) error {
		st, err := fn(svc)
		if err != nil {
			return err
		}
		weapon := st.Weapon
		return a.emit(cmd, weapon, func(w io.Writer) { writeWeapon(w, weapon) })
	})
}
