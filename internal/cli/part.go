package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/pkg/types"
)

func (a *app) newPartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "part",
		Short: "Manage the weapon part catalog",
		Long: "Manage the weapon part catalog. A part's position in the list is the\n" +
			"index weapon ids refer to, so removing parts changes existing ids.",
	}
	cmd.AddCommand(a.newPartAddCmd())
	cmd.AddCommand(a.partOp("remove <name>", "Remove every part with the given name", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) { return svc.RemovePart(args[0]) }))
	cmd.AddCommand(a.partOp("seed", "Load the built-in parts and curves into an empty catalog", cobra.NoArgs,
		func(svc *service.Service, args []string) (types.State, error) {
			st, _, err := svc.SeedCatalog()
			return st, err
		}))
	cmd.AddCommand(a.partOp("list", "List the part catalog", cobra.NoArgs,
		func(svc *service.Service, args []string) (types.State, error) { return svc.State(), nil }))
	return cmd
}

func (a *app) newPartAddCmd() *cobra.Command {
	var slot, rarity, company, details string

	cmd := a.partOp("add <name>", "Append a part to the catalog", cobra.ExactArgs(1),
		func(svc *service.Service, args []string) (types.State, error) {
			return svc.AddPart(types.Part{
				Name:    args[0],
				Details: details,
				Type:    types.PartType(slot),
				Rarity:  types.Rarity(rarity),
				Company: types.Company(company),
			})
		})
	cmd.Flags().StringVar(&slot, "slot", "", "weapon slot: body, barrel, magazine or stock")
	cmd.Flags().StringVar(&rarity, "rarity", string(types.RarityCommon), "rarity: common, uncommon, rare, epic, legendary or unique")
	cmd.Flags().StringVar(&company, "company", "", "manufacturer: arksys, dikarum, pecora, sisterhood, theia or west_field")
	cmd.Flags().StringVar(&details, "details", "", "flavor text shown on weapons using the part")
	cmd.MarkFlagRequired("slot")
	cmd.MarkFlagRequired("company")
	return cmd
}

// partOp builds a subcommand that runs op and prints the catalog.
func (a *app) partOp(use, short string, argsFn cobra.PositionalArgs, op func(*service.Service, []string) (types.State, error)) *cobra.Command {
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
				parts := st.Parts
				return a.emit(cmd, parts, func(w io.Writer) { writeParts(w, parts) })
			})
		},
	}
}
