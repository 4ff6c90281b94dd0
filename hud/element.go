// Package hud implements the on-screen display components for Pet-a-Cat:
// a score tracker and a countdown timer, both rendered through named text
// elements of a host UI tree. The package has no opinion about what the
// tree is — anything that can look up an element by id and overwrite its
// text will do (the game wires in an ebitenui widget tree, tests wire in
// maps).
package hud

import "fmt"

// Document is the host UI tree. Lookups are read-only; the document is
// expected to outlive any component bound to it.
type Document interface {
	// ElementByID returns the element registered under id, or false if
	// no such element exists.
	ElementByID(id string) (Element, bool)
}

// Element is a single text-bearing node of the host UI tree.
type Element interface {
	SetText(s string)
	Text() string
}

// ElementNotFoundError is returned when a component is constructed
// against an id the document does not contain.
type ElementNotFoundError struct {
	ID string
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("hud: no element with id %q", e.ID)
}

// ElementBinding ties one logical id to one element of a Document. The
// binding is resolved once, at construction, and never changes.
type ElementBinding struct {
	id string
	el Element
}

// NewElementBinding resolves id against doc. It returns an
// *ElementNotFoundError if the id is absent; no partially-bound value is
// returned in that case.
func NewElementBinding(doc Document, id string) (*ElementBinding, error) {
	el, ok := doc.ElementByID(id)
	if !ok {
		return nil, &ElementNotFoundError{ID: id}
	}
	return &ElementBinding{id: id, el: el}, nil
}

// ID returns the identifier the binding was constructed with.
func (b *ElementBinding) ID() string { return b.id }

// Element returns the bound element. The same element is returned for
// the binding's whole lifetime.
func (b *ElementBinding) Element() Element { return b.el }
