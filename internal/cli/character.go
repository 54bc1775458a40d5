package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

func (a *app) newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Manage characters and their stat values",
	}

	cmd.AddCommand(a.characterOp("add <name>", "Add a character with every stat at zero", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) { return svc.AddCharacter(args[0]) }))
	cmd.AddCommand(a.characterOp("remove <name>", "Remove a character", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) { return svc.RemoveCharacter(args[0]) }))
	cmd.AddCommand(a.characterOp("inc <name> <stat>", "Add one to a stat", cobra.ExactArgs(2),
		func(svc *service.Service, args []string) (types.State, error) { return svc.IncrementStat(args[0], args[1]) }))
	cmd.AddCommand(a.characterOp("dec <name> <stat>", "Subtract one from a stat", cobra.ExactArgs(2),
		func(svc *service.Service, args []string) (types.State, error) { return svc.DecrementStat(args[0], args[1]) }))
	cmd.AddCommand(a.characterOp("toggle <name> <stat>", "Flip a stat between 0 and 1", cobra.ExactArgs(2),
		func(svc *service.Service, args []string) (types.State, error) { return svc.ToggleStat(args[0], args[1]) }))
	cmd.AddCommand(a.characterOp("list", "List characters", cobra.NoArgs,
		func(svc *service.Service, args []string) (types.State, error) { return svc.State(), nil }))

	return cmd
}

// characterOp builds a subcommand that runs op and prints the characters.
func (a *app) characterOp(use, short string, argsFn cobra.PositionalArgs, op func(*service.Service, []string) (types.State, error)) *cobra.Command {
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
				characters := st.Characters
				return a.emit(cmd, characters, func(w io.Writer) { writeCharacters(w, characters) })
			})
		},
	}
}
