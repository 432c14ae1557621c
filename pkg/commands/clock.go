package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/runner/clock"
	"tableflip.dev/recovery/pkg/store"
)

func addClock(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Open the full-screen sobriety counter",
		Example: `
recovery clock
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := clock.Clock{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
