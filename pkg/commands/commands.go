package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "recovery",
		Short: base.Wrap80("A companion for tracking your recovery: sobriety date, journal, goals, and workbook."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addBegin(topLevel)
	addDate(topLevel)
	addClock(topLevel)
	addJournal(topLevel)
	addGoal(topLevel)
	addWorkbook(topLevel)
	addExport(topLevel)
	addTip(topLevel)
	addKey(topLevel)
	addFact(topLevel)
	addCoping(topLevel)
	addLiterature(topLevel)
	addMeetings(topLevel)
	addVersion(topLevel)
}
