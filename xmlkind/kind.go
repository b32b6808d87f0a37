package xmlkind

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/nixon/githubv2/errors"
)

// Kind decodes one XML element into a Go value. The registry is passed
// through so container kinds can recursively decode their children.
type Kind interface {
	DecodeElement(reg *Registry, el *etree.Element) (any, error)
}

// Record is a decoded value with named fields. Implementations receive one
// SetField call per contentful child element, with hyphens in the child's
// tag name already normalized to underscores.
type Record interface {
	SetField(name string, value any)
}

// ScalarKind converts an element's direct text content into a primitive.
type ScalarKind func(text string) (any, error)

// DecodeElement converts the element's text and wraps conversion failures
// with the element's serialized form.
func (f ScalarKind) DecodeElement(_ *Registry, el *etree.Element) (any, error) {
	v, err := f(el.Text())
	if err != nil {
		werr := errors.Wrapf(err, errors.CodeDecodeFailed, "cannot convert element <%s>", el.Tag)
		return nil, errors.WithContext(werr, "element", elementString(el))
	}
	return v, nil
}

// StringKind decodes an element's text content unchanged. It backs the
// "string" registration and is exported so callers can shadow an ambiguous
// record kind with plain string decoding via Registry.Override.
var StringKind Kind = ScalarKind(func(text string) (any, error) {
	return text, nil
})

func decodeInteger(text string) (any, error) {
	return strconv.Atoi(text)
}

func decodeFloat(text string) (any, error) {
	return strconv.ParseFloat(text, 64)
}

// Datetime values pass through as strings; callers parse on demand.
func decodeDatetime(text string) (any, error) {
	return text, nil
}

// Boolean is true iff the text is the literal "true".
func decodeBoolean(text string) (any, error) {
	return text == "true", nil
}

// arrayKind decodes the immediate child elements of a container into an
// ordered sequence. Children with no content (empty or self-closing nodes)
// are skipped rather than represented, as are <type> kind markers.
type arrayKind struct{}

func (arrayKind) DecodeElement(reg *Registry, el *etree.Element) (any, error) {
	out := []any{}
	for _, ch := range el.ChildElements() {
		if len(ch.Child) == 0 || ch.Tag == "type" {
			continue
		}
		v, err := Decode(reg, ch)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// RecordKind decodes an element into a fresh record produced by New. Each
// contentful child element is recursively decoded and assigned to the field
// named by its tag, with hyphens normalized to underscores. Pure-text
// children, empty elements, and <type> kind markers are skipped.
type RecordKind struct {
	New func() Record
}

func (k RecordKind) DecodeElement(reg *Registry, el *etree.Element) (any, error) {
	rec := k.New()
	for _, ch := range el.ChildElements() {
		if len(ch.Child) == 0 || ch.Tag == "type" {
			continue
		}
		v, err := Decode(reg, ch)
		if err != nil {
			return nil, err
		}
		rec.SetField(strings.ReplaceAll(ch.Tag, "-", "_"), v)
	}
	return rec, nil
}
