package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/runner/resources"
)

func addFact(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "fact",
		Short: "Print a random recovery insight",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resources.Fact{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addCoping(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "coping [title]",
		Short: "Print the coping card deck, or one card",
		Example: `
recovery coping
recovery coping "Deep Breathing"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resources.Coping{Title: strings.Join(args, " ")}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addLiterature(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "literature [work]",
		Aliases: []string{"lit"},
		Short:   "Print recovery literature excerpts",
		Example: `
recovery literature
recovery literature aa_big_book
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resources.Literature{}
			if len(args) == 1 {
				s.WorkID = args[0]
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addMeetings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "meetings",
		Short: "Print fellowship meeting directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resources.Meetings{}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
