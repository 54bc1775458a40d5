package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

func (a *app) newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Manage the stat template shared by every character",
	}
	cmd.AddCommand(a.newStatAddCmd())
	cmd.AddCommand(a.statOp("remove <name>", "Remove a stat from the template and every character", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) { return svc.RemoveStat(args[0]) }))
	cmd.AddCommand(a.statOp("list", "List the stat template", cobra.NoArgs,
		func(svc *service.Service, args []string) (types.State, error) { return svc.State(), nil }))
	return cmd
}

func (a *app) newStatAddCmd() *cobra.Command {
	var typ string

	cmd := a.statOp("add <name>", "Add a stat to the template", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) {
			return svc.AddStat(args[0], types.StatType(typ))
		})
	cmd.Flags().StringVar(&typ, "type", string(types.StatNumber), "stat type: number or boolean")
	return cmd
}

// statOp builds a subcommand that runs op and prints the template.
func (a *app) statOp(use, short string, argsFn cobra.PositionalArgs, op func(*service.Service, []string) (types.State, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsFn,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *service.Service) error {
				st, err := op(svc, args)
				if err != nil {
					return err
				}
				stats := st.Stats
				return a.emit(cmd, stats, func(w io.Writer) { writeStats(w, stats) })
			})
		},
	}
}
