package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/recovery/pkg/assist"
	"tableflip.dev/recovery/pkg/commands/options"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/runner/add"
	"tableflip.dev/recovery/pkg/runner/edit"
	"tableflip.dev/recovery/pkg/runner/get"
	"tableflip.dev/recovery/pkg/runner/idea"
	"tableflip.dev/recovery/pkg/runner/remove"
	"tableflip.dev/recovery/pkg/runner/resources"
	"tableflip.dev/recovery/pkg/runner/write"
	"tableflip.dev/recovery/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"j"},
		Short:   "Work with journal entries",
		Example: `
recovery journal add feeling grateful today
recovery journal list --since 1w
recovery journal write --template gratitude
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addListAdd(cmd, repo.Journal, "a note about how you feel")
	addListGet(cmd, repo.Journal)
	addListEdit(cmd, repo.Journal)
	addListRemove(cmd, repo.Journal)
	addJournalWrite(cmd)
	addJournalIdea(cmd)
	addJournalTemplates(cmd)

	topLevel.AddCommand(cmd)
}

// addListAdd, addListGet, addListEdit, and addListRemove are shared between
// the journal and goal trees; the Kind decides which collection they touch.
func addListAdd(topLevel *cobra.Command, kind repo.Kind, what string) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add " + what,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires " + what)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Kind:        kind,
				Message:     strings.Join(args, " "),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addListGet(topLevel *cobra.Command, kind repo.Kind) {
	io := &options.IDOptions{}
	wo := &options.WindowOptions{}
	open := false

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the " + kind.Name + " collection, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Kind:        kind,
				Window:      wo.Since,
				Open:        open,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddWindowArgs(cmd, wo)
	if kind.Completable {
		cmd.Flags().BoolVar(&open, "open", false, "Only list goals not yet completed.")
	}

	topLevel.AddCommand(cmd)
}

func addListEdit(topLevel *cobra.Command, kind repo.Kind) {
	cmd := &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Reword a record; the edit moves it to the top",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires an id and the new text")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := edit.Edit{
				Kind:        kind,
				ID:          args[0],
				Message:     strings.Join(args[1:], " "),
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addListRemove(topLevel *cobra.Command, kind repo.Kind) {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a record",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a record id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				Kind:        kind,
				ID:          args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addJournalWrite(topLevel *cobra.Command) {
	wo := &options.WriteOptions{}

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Open the journal editor; drafts autosave while you type",
		Example: `
recovery journal write
recovery journal write --template halt
recovery journal write --coping "Play the Tape Through"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := write.Write{
				TemplateID:  wo.Template,
				CopingCard:  wo.CopingCard,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWriteArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}

func addJournalIdea(topLevel *cobra.Command) {
	save := false

	cmd := &cobra.Command{
		Use:   "idea <topic or feeling>",
		Short: "Ask the journaling helper for a starting point",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a topic or feeling")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			helper, err := assist.FromEnv()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := idea.Idea{
				Prompt:      strings.Join(args, " "),
				Save:        save,
				Helper:      helper,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Stage the suggestion as the pending draft.")
	topLevel.AddCommand(cmd)
}

func addJournalTemplates(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "templates [id]",
		Short: "List the journal templates, or print one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resources.Templates{}
			if len(args) == 1 {
				s.ID = args[0]
			}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
