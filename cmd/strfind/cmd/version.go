package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/strfind/strfind/internal/output"
	"github.com/strfind/strfind/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(version.GetInfo())
			}

			out := output.New(cmd.OutOrStdout())
			out.Plain(version.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")

	return cmd
}
