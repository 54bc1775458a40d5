package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/service"
)

func (a *app) newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print the stats, characters and parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withService(func(svc *service.Service) error {
				st := svc.State()
				return a.emit(cmd, st, func(w io.Writer) { writeState(w, st) })
			})
		},
	}
}
