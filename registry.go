package ontogen

import (
	"reflect"
	"sync"
)

// Factory produces a wrapper instance over a handle. The returned value
// must implement the interface the factory was registered under.
type Factory func(Handle) any

// Registry is a process-wide, append-only map from interface identity to
// wrapper factory. Registration happens from init functions of generated
// packages racing at program startup; lookups happen from any goroutine at
// materialization time. Both paths are lock-free: entries are inserted at
// most once per key and never removed or replaced, so sync.Map's atomic
// insert-if-absent is all the synchronization needed.
//
// The zero value is ready to use.
type Registry struct {
	factories sync.Map // reflect.Type -> Factory
}

// Register binds an interface token to a factory. The first registration
// for a token wins; later calls are ignored and reported by the return
// value. Registration order across independent classes is not defined.
func (r *Registry) Register(token reflect.Type, f Factory) bool {
	_, loaded := r.factories.LoadOrStore(token, f)
	return !loaded
}

// Lookup returns the factory registered for the token, if any.
func (r *Registry) Lookup(token reflect.Type) (Factory, bool) {
	v, ok := r.factories.Load(token)
	if !ok {
		return nil, false
	}
	return v.(Factory), true
}

// Materialize produces a typed view over the handle for the given interface
// token. A missing factory yields *NotRegisteredError: the data may be
// fine, but a wrapper package was not linked into the binary.
//
// No identity caching is performed: two materializations of the same
// (graph, node, interface) are distinct, independent views. Wrappers are
// stateless facades, so this is safe.
func (r *Registry) Materialize(h Handle, token reflect.Type) (any, error) {
	f, ok := r.Lookup(token)
	if !ok {
		return nil, NewNotRegisteredError(token)
	}
	return f(h), nil
}

// defaultRegistry is the process-wide registry generated code registers
// into. Hosts embedding several independent ontologies may still share it:
// interface identity keeps them apart.
var defaultRegistry Registry

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry { return &defaultRegistry }

// InterfaceToken returns the registry key for the interface type T.
func InterfaceToken[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterFactory binds T to a factory in the default registry. Generated
// wrapper packages call this exactly once per interface, from init.
func RegisterFactory[T any](f func(Handle) T) bool {
	return defaultRegistry.Register(InterfaceToken[T](), func(h Handle) any { return f(h) })
}

// Materialize produces a typed view over the handle from the default
// registry.
func Materialize[T any](h Handle) (T, error) {
	var zero T
	v, err := defaultRegistry.Materialize(h, InterfaceToken[T]())
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MaterializeType is the reflect-typed form of Materialize, used when the
// interface is only known dynamically.
func MaterializeType(h Handle, token reflect.Type) (any, error) {
	return defaultRegistry.Materialize(h, token)
}
