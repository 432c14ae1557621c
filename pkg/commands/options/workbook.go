package options

import (
	"github.com/spf13/cobra"
)

// WorkbookOptions
type WorkbookOptions struct {
	Watch bool
}

func AddWatchArgs(cmd *cobra.Command, o *WorkbookOptions) {
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and reprint when the workbook changes on disk.")
}
