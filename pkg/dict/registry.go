// Package dict implements the serialization boundary: ToDict/FromDict, the
// keyword-argument extraction helper DictToConstructorKwargs, and the
// process-scoped variant registry FromDict resolves kind tags against.
package dict

import (
	"fmt"
	"sync"

	"github.com/L-iet/pylogic-core/pkg/term"
	"github.com/L-iet/pylogic-core/pkg/termerr"
)

// VariantCtor constructs a Term of one registered kind from its
// already-reconstructed children and the raw attribute mapping (the full
// node dict, so a variant may read whichever child-independent attribute
// names it declares).
type VariantCtor func(children []term.Term, attrs map[string]any) (term.Term, error)

type kindKey struct {
	module string
	name   string
}

// Registry is a process-scoped, mutex-guarded mapping from kind tag
// (class_module, class_name) to variant constructor. The zero value is not
// usable; construct with NewRegistry. A package-level default instance
// (DefaultRegistry) is what the package-level Register/FromDict functions
// use, since most programs need only one registry populated once at start.
type Registry struct {
	mu    sync.RWMutex
	ctors map[kindKey]VariantCtor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ctors: make(map[kindKey]VariantCtor)}
}

// Register installs the constructor for (module, name), overwriting any
// existing entry. It is intended to be called once per variant at process
// start, before any FromDict call names that kind tag.
func (r *Registry) Register(module, name string, ctor VariantCtor) error {
	if err := validateKindTag(module, name); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctors[kindKey{module, name}] = ctor
	return nil
}

// Lookup returns the constructor registered for (module, name).
func (r *Registry) Lookup(module, name string) (VariantCtor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctor, ok := r.ctors[kindKey{module, name}]
	return ctor, ok
}

func validateKindTag(module, name string) error {
	if module == "" {
		return termerr.NewInvalidArgument("class_module cannot be empty")
	}
	if name == "" {
		return termerr.NewInvalidArgument("class_name cannot be empty")
	}
	return nil
}

// DefaultRegistry is the registry the package-level Register and FromDict
// functions operate on.
var DefaultRegistry = NewRegistry()

// Register installs ctor for (module, name) in DefaultRegistry.
func Register(module, name string, ctor VariantCtor) error {
	return DefaultRegistry.Register(module, name, ctor)
}

// lookupOrFail resolves a kind tag against DefaultRegistry, producing the
// DeserializationError required when a kind tag has no registered variant.
func lookupOrFail(module, name string) (VariantCtor, error) {
	ctor, ok := DefaultRegistry.Lookup(module, name)
	if !ok {
		return nil, termerr.NewDeserializationError(
			fmt.Sprintf("no variant registered for class_module=%q class_name=%q", module, name))
	}
	return ctor, nil
}
