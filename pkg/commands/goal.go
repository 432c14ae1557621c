package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/runner/done"
	"tableflip.dev/recovery/pkg/store"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals", "g"},
		Short:   "Work with recovery goals",
		Example: `
recovery goal add call my sponsor this week
recovery goal list --open
recovery goal done <id>
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addListAdd(cmd, repo.Goals, "a goal to work toward")
	addListGet(cmd, repo.Goals)
	addListEdit(cmd, repo.Goals)
	addListRemove(cmd, repo.Goals)
	addGoalDone(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete", "toggle"},
		Short:   "Toggle a goal between open and completed",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := done.Done{
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
