// Package edit provides the runner logic for rewording a record.
package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
)

// Edit replaces the text of one record. The edit bumps the record's
// timestamp, so it resurfaces at the head of the collection.
type Edit struct {
	Kind    repo.Kind
	ID      string
	Message string

	Persistence *store.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}

	list := repo.NewList(n.Persistence, n.Kind)
	r, err := list.Find(n.ID)
	if err != nil {
		return err
	}
	if _, err := list.Update(r.ID, n.Message); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title(n.Kind.Name)
	pp.Records(n.Kind, list.LoadAll()...)

	return nil
}
