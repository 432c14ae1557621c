package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/commands/options"
	"tableflip.dev/recovery/pkg/runner/workbook"
	"tableflip.dev/recovery/pkg/store"
)

func addWorkbook(topLevel *cobra.Command) {
	wo := &options.WorkbookOptions{}

	cmd := &cobra.Command{
		Use:     "workbook",
		Aliases: []string{"wb"},
		Short:   "Track progress through the exercise workbook",
		Example: `
recovery workbook
recovery workbook topic step-1
recovery workbook answer step-1-A-1 "It means I cannot stop on my own."
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workbook.Workbook{
				Watch:       wo.Watch,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWatchArgs(cmd, wo)
	addWorkbookTopic(cmd)
	addWorkbookAnswer(cmd)

	topLevel.AddCommand(cmd)
}

func addWorkbookTopic(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "topic <id>",
		Short: "Show one topic's questions and answers",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a topic id, example: step-1")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workbook.Workbook{
				TopicID:     args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addWorkbookAnswer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "answer <question key> <text>",
		Short: "Record an answer to a workbook question",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a question key and the answer text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := workbook.Workbook{
				QuestionKey: args[0],
				Answer:      strings.Join(args[1:], " "),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
