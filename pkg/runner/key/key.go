// Package key provides CLI helpers to display the bullet legend.
package key

import (
	"context"
	"fmt"

	"tableflip.dev/recovery/pkg/printers"
)

// Key prints the glyph legend.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Legend()
	fmt.Println("")
	return nil
}
