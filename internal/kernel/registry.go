package kernel

import (
	"sync"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/cespare/xxhash/v2"
)

// Registry caches compiled kernels keyed by operator and argument type
// signature. Kernels are stateless, so a cached instance is shared freely
// across concurrent callers. Construction errors are not cached.
type Registry struct {
	mu      sync.RWMutex
	kernels map[uint64]Function
}

// NewRegistry creates an empty kernel registry.
func NewRegistry() *Registry {
	return &Registry{kernels: make(map[uint64]Function)}
}

// Lookup returns the cached kernel for (op, argTypes), compiling and caching
// it on first use. Signature and unsupported-type errors surface unchanged
// from Make.
func (r *Registry) Lookup(op Op, argTypes []arrow.DataType) (Function, error) {
	key := cacheKey(op, argTypes)

	r.mu.RLock()
	fn, ok := r.kernels[key]
	r.mu.RUnlock()
	if ok {
		return fn, nil
	}

	fn, err := Make(op, op.String(), argTypes)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if cached, ok := r.kernels[key]; ok {
		fn = cached
	} else {
		r.kernels[key] = fn
	}
	r.mu.Unlock()
	return fn, nil
}

// Len returns the number of cached kernels.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kernels)
}

func cacheKey(op Op, argTypes []arrow.DataType) uint64 {
	h := xxhash.New()
	_, _ = h.WriteString(op.String())
	for _, dt := range argTypes {
		_, _ = h.Write([]byte{0})
		_, _ = h.WriteString(dt.String())
	}
	return h.Sum64()
}
