// Package export provides the runner logic for backing up the store.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/recovery/pkg/export"
	"tableflip.dev/recovery/pkg/store"
)

// Export snapshots every data key into a dated JSON file, or to stdout.
type Export struct {
	Dir    string
	Stdout bool

	Persistence *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	svc := &export.Service{Store: n.Persistence}

	if n.Stdout {
		data, err := svc.Snapshot()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	path, err := svc.Write(n.Dir)
	if err != nil {
		return err
	}
	_, _ = color.New(color.Bold).Printf("exported to %s\n", path)
	return nil
}
