// Package done provides the runner logic for toggling goal completion.
package done

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
)

// Done flips the completed flag on a goal. Toggling never reorders the
// collection; the timestamp stays put.
type Done struct {
	ID string

	Persistence *store.Store
}

func (n *Done) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	list := repo.NewList(n.Persistence, repo.Goals)
	r, err := list.Find(n.ID)
	if err != nil {
		return err
	}
	if _, err := list.ToggleCompletion(r.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(repo.Goals.Name)
	pp.Records(repo.Goals, list.LoadAll()...)

	return nil
}
