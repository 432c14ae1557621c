package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/runner/tip"
	"tableflip.dev/recovery/pkg/store"
)

func addTip(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tip",
		Short: "Show the welcome tip",
		Example: `
recovery tip
recovery tip dismiss
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tip.Tip{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss",
		Short: "Dismiss the welcome tip for good",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := tip.Tip{Dismiss: true, Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	})

	topLevel.AddCommand(cmd)
}
