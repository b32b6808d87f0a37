package xmlkind

import "sort"

// Registry maps kind names to the Kind that decodes them.
//
// A new registry is seeded with the scalar kinds (string, integer, float,
// datetime, boolean) and the array kind. Record kinds are added by the
// caller with Register.
type Registry struct {
	kinds map[string]Kind
}

// NewRegistry creates a registry seeded with the built-in scalar and array
// kinds.
func NewRegistry() *Registry {
	r := &Registry{kinds: make(map[string]Kind)}
	r.Register("string", StringKind)
	r.Register("integer", ScalarKind(decodeInteger))
	r.Register("float", ScalarKind(decodeFloat))
	r.Register("datetime", ScalarKind(decodeDatetime))
	r.Register("boolean", ScalarKind(decodeBoolean))
	r.Register("array", arrayKind{})
	return r
}

// Register binds a kind under the given name. A later registration for the
// same name silently replaces the earlier one.
func (r *Registry) Register(name string, kind Kind) {
	r.kinds[name] = kind
}

// Lookup returns the kind registered under the given name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	kind, ok := r.kinds[name]
	return kind, ok
}

// Unregister removes the binding for the given name. Removing a name that
// was never registered is a no-op.
func (r *Registry) Unregister(name string) {
	delete(r.kinds, name)
}

// Override installs a scoped replacement binding for the given name and
// returns a closure that reinstates the prior state. Passing a nil kind
// removes the binding for the duration of the override.
//
// The restore closure is intended for deferred execution so the registry is
// identical before and after the enclosing operation, whether it succeeds
// or fails:
//
//	restore := reg.Override("user", xmlkind.StringKind)
//	defer restore()
func (r *Registry) Override(name string, kind Kind) (restore func()) {
	prev, had := r.kinds[name]
	if kind == nil {
		delete(r.kinds, name)
	} else {
		r.kinds[name] = kind
	}
	return func() {
		if had {
			r.kinds[name] = prev
		} else {
			delete(r.kinds, name)
		}
	}
}

// Known returns the sorted names of all registered kinds. It is used in
// decode error diagnostics.
func (r *Registry) Known() []string {
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
