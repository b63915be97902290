package canon

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/textcore/errors"
)

// Allocator reserves guest memory.
type Allocator interface {
	Alloc(ctx context.Context, size, align uint32) (uint32, error)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc func(ctx context.Context, size, align uint32) (uint32, error)

func (f AllocatorFunc) Alloc(ctx context.Context, size, align uint32) (uint32, error) {
	return f(ctx, size, align)
}

// Realloc allocates through a guest's cabi_realloc style export with the
// signature (orig_ptr, orig_size, align, new_size) -> ptr.
type Realloc struct {
	Fn api.Function
}

func (r Realloc) Alloc(ctx context.Context, size, align uint32) (uint32, error) {
	if r.Fn == nil {
		return 0, errors.InvalidInput(errors.PhaseLower, "nil realloc function")
	}
	// Call realloc(0, 0, align, size) to allocate
	results, err := r.Fn.Call(ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Cause(err).
			Detail("realloc(0, 0, %d, %d) trapped", align, size).
			Build()
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseLower, size, align)
	}

	ptr := uint32(results[0])
	if ptr%align != 0 {
		return 0, errors.New(errors.PhaseLower, errors.KindAllocation).
			Value(ptr).
			Detail("realloc returned misaligned pointer %d (align %d)", ptr, align).
			Build()
	}
	return ptr, nil
}
