package options

import (
	"github.com/spf13/cobra"
)

// DateOptions
type DateOptions struct {
	Reflect bool
}

func AddReflectArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().BoolVar(&o.Reflect, "journal", false,
		"Stage a journal reflection about why the date moved.")
}
