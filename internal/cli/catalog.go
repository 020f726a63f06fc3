package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "List services the registry has resource types for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}
			names, err := service.ServiceNames(viper.GetString("provider"))
			if err != nil {
				return err
			}
			printLines(cmd, names)
			return nil
		},
	}
	cmd.Flags().String("provider", "", "Provider name (default aws)")
	_ = viper.BindPFlag("provider", cmd.Flags().Lookup("provider"))
	return cmd
}

func newTypesCommand() *cobra.Command {
	opts := struct {
		Service string
	}{}
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List resource types registered for a service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}
			names, err := service.TypeNames("", resolveString(cmd, opts.Service, "service", "service"))
			if err != nil {
				return err
			}
			printLines(cmd, names)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Service, "service", "", "Service name")
	_ = viper.BindPFlag("service", cmd.Flags().Lookup("service"))
	return cmd
}

func newRegionsCommand() *cobra.Command {
	opts := struct {
		Service string
	}{}
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions a service is available in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := newService(cmd)
			if err != nil {
				return err
			}
			printLines(cmd, service.RegionNames(opts.Service))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.Service, "service", "", "Service name")
	return cmd
}

func printLines(cmd *cobra.Command, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
