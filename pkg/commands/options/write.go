package options

import (
	"github.com/spf13/cobra"
)

// WriteOptions
type WriteOptions struct {
	Template   string
	CopingCard string
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	cmd.Flags().StringVarP(&o.Template, "template", "t", "",
		`Seed the editor from a journal template, example: --template=gratitude.`)
	cmd.Flags().StringVar(&o.CopingCard, "coping", "",
		`Seed the editor with a coping card reflection, example: --coping="Deep Breathing".`)
}
