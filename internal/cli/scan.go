package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cloudsweep/internal/app"
)

type scanOptions struct {
	Limit    int
	ARNsOnly bool
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan <locator>",
		Short: "Resolve a locator and stream matching resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Stop after this many resources (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.ARNsOnly, "arns", false, "Print only resolved locator strings")
	_ = viper.BindPFlag("limit", cmd.Flags().Lookup("limit"))
	return cmd
}

func runScan(cmd *cobra.Command, locator string, opts scanOptions) error {
	service, err := newService(cmd)
	if err != nil {
		return err
	}
	stream, err := service.Scan(cmd.Context(), app.ScanRequest{
		Locator: locator,
		Limit:   resolveInt(cmd, opts.Limit, "limit", "limit"),
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	encoder := json.NewEncoder(out)
	for resource, err := range stream {
		if err != nil {
			return err
		}
		if opts.ARNsOnly {
			fmt.Fprintln(out, resource.ARN())
			continue
		}
		record := map[string]any{
			"arn":  resource.ARN(),
			"type": resource.Type,
			"id":   resource.ID,
			"data": resource.Data,
		}
		if err := encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}
