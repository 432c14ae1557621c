// Package remove provides the runner logic for deleting records.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
)

// Remove deletes one record from a collection.
type Remove struct {
	Kind repo.Kind
	ID   string

	Persistence *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	list := repo.NewList(n.Persistence, n.Kind)
	r, err := list.Find(n.ID)
	if err != nil {
		return err
	}
	if err := list.Remove(r.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(n.Kind.Name)
	pp.Records(n.Kind, list.LoadAll()...)

	return nil
}
