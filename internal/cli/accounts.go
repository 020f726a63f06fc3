package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List known account ids and the profiles that reach them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}
			entries, err := service.Accounts(cmd.Context())
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Account, entry.Profile)
			}
			return nil
		},
	}
}
