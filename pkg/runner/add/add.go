// Package add provides the runner logic for creating records.
package add

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
)

// Add creates one record in a collection and reprints it.
type Add struct {
	Kind    repo.Kind
	Message string

	Persistence *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	list := repo.NewList(n.Persistence, n.Kind)
	if _, err := list.Create(n.Message); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title(n.Kind.Name)
	pp.Records(n.Kind, list.LoadAll()...)

	return nil
}
