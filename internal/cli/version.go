package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/lithiumscope/internal/ingest"
)

// NewVersionCmd prints the binary version and the embedded dataset it carries.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.Printf("lithiumscope %s\n", ver)
			ds := ingest.MustDefault()
			cmd.Printf("embedded dataset: %s (schema %s, as of %s)\n",
				ds.Manifest.Name, ds.Manifest.SchemaVersion, ds.Manifest.AsOf)
			cmd.Printf("supported schema: %s\n", ingest.SupportedSchemaConstraint)
			return nil
		},
	}
}
