package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/recovery/pkg/printers"
	"tableflip.dev/recovery/pkg/record"
	"tableflip.dev/recovery/pkg/repo"
	"tableflip.dev/recovery/pkg/store"
	"tableflip.dev/recovery/pkg/timeutil"
)

// Get lists a collection, optionally limited to a recent window.
type Get struct {
	ShowID bool
	Kind   repo.Kind
	Window string
	Open   bool

	Persistence *store.Store
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	list := repo.NewList(n.Persistence, n.Kind)
	all := list.LoadAll()

	title := n.Kind.Name
	if n.Window != "" {
		window, canonical, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		all = n.since(all, time.Now().Add(-window))
		title = fmt.Sprintf("%s (last %s)", title, canonical)
	}
	if n.Open && n.Kind.Completable {
		all = n.incomplete(all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.TitleWithCount(title, len(all))
	pp.Records(n.Kind, all...)

	return nil
}

func (n *Get) since(all []record.Record, cutoff time.Time) []record.Record {
	c := make([]record.Record, 0, len(all))
	for _, r := range all {
		if !r.Timestamp.Before(cutoff) {
			c = append(c, r)
		}
	}
	return c
}

func (n *Get) incomplete(all []record.Record) []record.Record {
	c := make([]record.Record, 0, len(all))
	for _, r := range all {
		if !r.Completed {
			c = append(c, r)
		}
	}
	return c
}
