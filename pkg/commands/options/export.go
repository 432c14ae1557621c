package options

import (
	"github.com/spf13/cobra"
)

// ExportOptions
type ExportOptions struct {
	Dir    string
	Stdout bool
}

func AddExportArgs(cmd *cobra.Command, o *ExportOptions) {
	cmd.Flags().StringVar(&o.Dir, "dir", ".",
		"Directory the dated export file is written to.")
	cmd.Flags().BoolVar(&o.Stdout, "stdout", false,
		"Print the export document instead of writing a file.")
}
