package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cloudsweep/internal/app"
)

func newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <partial-locator>",
		Short: "List candidate values for the last field of a partial locator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}
			candidates, err := service.Complete(cmd.Context(), app.CompleteRequest{Locator: args[0]})
			if err != nil {
				return err
			}
			for _, candidate := range candidates {
				fmt.Fprintln(cmd.OutOrStdout(), candidate)
			}
			return nil
		},
	}
}
