package core

// Size describes pixel or cell dimensions.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Registry maps names to constructors of T, keeping insertion order for
// presentation.
type Registry[T any] struct {
	order []string
	items map[string]T
}

// Register adds an entry under the provided name. Empty names are ignored and
// re-registering a name replaces the entry in place.
func (r *Registry[T]) Register(name string, item T) {
	if name == "" {
		return
	}
	if r.items == nil {
		r.items = map[string]T{}
	}
	if _, ok := r.items[name]; !ok {
		r.order = append(r.order, name)
	}
	r.items[name] = item
}

// Lookup returns the entry registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	item, ok := r.items[name]
	return item, ok
}

// Names lists registered names in registration order.
func (r *Registry[T]) Names() []string {
	return append([]string(nil), r.order...)
}
