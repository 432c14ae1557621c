package options

import (
	"github.com/spf13/cobra"
)

// WindowOptions
type WindowOptions struct {
	Since string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only list records newer than a window, example: --since=1w or --since=3d.`)
}
