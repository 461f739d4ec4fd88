package buffer

import (
	"fmt"

	"github.com/eliangidoni/wirecc/errs"
	"github.com/eliangidoni/wirecc/internal/options"
)

// Option configures a Buffer during New or From.
type Option = options.Option[*Buffer]

// WithCapacity pre-grows the backing storage so at least n more bytes can be
// written without reallocation. Use it when the serialized size is known up
// front to avoid intermediate growth.
//
// The option fails with errs.ErrInvalidCapacity if n is negative.
func WithCapacity(n int) Option {
	return options.New(func(b *Buffer) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, n)
		}
		b.ensure()
		b.store.Grow(n)

		return nil
	})
}
