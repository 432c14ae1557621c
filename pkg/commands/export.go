package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/commands/options"
	"tableflip.dev/recovery/pkg/runner/export"
	"tableflip.dev/recovery/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	eo := &options.ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Back up everything to a dated JSON file",
		Example: `
recovery export
recovery export --dir ~/backups
recovery export --stdout
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Dir:         eo.Dir,
				Stdout:      eo.Stdout,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddExportArgs(cmd, eo)
	topLevel.AddCommand(cmd)
}
