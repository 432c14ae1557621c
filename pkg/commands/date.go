package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/commands/options"
	"tableflip.dev/recovery/pkg/runner/sobriety"
	"tableflip.dev/recovery/pkg/store"
)

func addBegin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "begin [date]",
		Short: "Start your recovery journey",
		Long: "Set the sobriety start date and show the welcome tip. " +
			"With no date, the clock starts now. Refuses to overwrite an existing date.",
		Example: `
recovery begin
recovery begin 2026-01-01
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sobriety.Sobriety{
				Begin:       true,
				Persistence: p,
			}
			if len(args) == 1 {
				s.DateString = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Show how long you have been sober",
		Example: `
recovery date
recovery date set 2026-01-01 --journal
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sobriety.Sobriety{Persistence: p}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addDateSet(cmd)
	topLevel.AddCommand(cmd)
}

func addDateSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "set <date>",
		Short: "Move the sobriety start date",
		Example: `
recovery date set 2026-01-01
recovery date set 2026-01-01 --journal
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a date, example: 2026-01-01")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sobriety.Sobriety{
				DateString:  args[0],
				Reflect:     do.Reflect,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddReflectArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
