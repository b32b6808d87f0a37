package xmlkind

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/nixon/githubv2/errors"
)

// Decode converts one XML element into a Go value using the kinds bound in
// the registry.
//
// The element's kind is resolved from, in order: an explicit "type"
// attribute, the element's tag name when registered, or — for container
// elements with more than one child node — the text of an immediate <type>
// child. An element whose kind cannot be determined, or whose kind is not
// registered, yields an error carrying the element's serialized form and
// the set of known kinds.
func Decode(reg *Registry, el *etree.Element) (any, error) {
	name, err := kindName(reg, el)
	if err != nil {
		return nil, err
	}
	kind, ok := reg.Lookup(name)
	if !ok {
		return nil, decodeError(reg, el, "unknown kind %q for element <%s>", name, el.Tag)
	}
	return kind.DecodeElement(reg, el)
}

func kindName(reg *Registry, el *etree.Element) (string, error) {
	if attr := el.SelectAttr("type"); attr != nil {
		return attr.Value, nil
	}
	if _, ok := reg.Lookup(el.Tag); ok {
		return el.Tag, nil
	}
	if len(el.Child) > 1 {
		// Container element: the kind is named by a nested type marker.
		for _, ch := range el.ChildElements() {
			if ch.Tag == "type" {
				return ch.Text(), nil
			}
		}
	}
	return "", decodeError(reg, el, "cannot determine kind for element <%s>", el.Tag)
}

func decodeError(reg *Registry, el *etree.Element, format string, args ...any) error {
	err := errors.Newf(errors.CodeDecodeFailed, format, args...)
	err = errors.WithContext(err, "element", elementString(el))
	return errors.WithContext(err, "known_kinds", strings.Join(reg.Known(), ", "))
}

// elementString serializes an element for error diagnostics.
func elementString(el *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "<" + el.Tag + ">"
	}
	return strings.TrimSpace(s)
}
