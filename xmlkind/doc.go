// Package xmlkind implements a schema-light decoder that turns XML element
// trees into Go values without a predeclared schema per document.
//
// The decoder resolves each element to a named kind using, in order, an
// explicit "type" attribute, the element's tag name when it matches a
// registered kind, or a nested <type> marker for container elements. The
// resolved kind then dispatches to a scalar converter, the array decoder,
// or a record constructor supplied at registration time.
//
// A Registry holds the kind bindings. Registries are plain values created
// with NewRegistry and threaded explicitly through Decode; there is no
// package-level registry. A binding can be replaced for the duration of a
// single decode with Registry.Override, which returns a restore closure
// suitable for defer so the registry is left untouched even when decoding
// fails part way through.
//
// Registries are not safe for concurrent use. Callers that share a registry
// across goroutines must provide their own synchronization; the intended
// pattern is one registry per client with single-goroutine call sequences.
package xmlkind
