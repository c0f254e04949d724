package surface

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNoElement   = errors.New("no drawable found")
	ErrNotBound    = errors.New("drawable has no bound context")
	ErrDuplicateID = errors.New("drawable id already attached")
)

// Document maps drawable ids to drawables, the way a page maps element ids
// to canvases. Renderable constructors only know the id.
type Document struct {
	mu        sync.RWMutex
	drawables map[string]Drawable
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{drawables: make(map[string]Drawable)}
}

// Attach adds d under its id
func (doc *Document) Attach(d Drawable) error {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	if _, ok := doc.drawables[d.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, d.ID())
	}
	doc.drawables[d.ID()] = d
	return nil
}

// Detach removes the drawable with the given id
func (doc *Document) Detach(id string) {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	delete(doc.drawables, id)
}

// Lookup returns the drawable attached under id
func (doc *Document) Lookup(id string) (Drawable, bool) {
	doc.mu.RLock()
	defer doc.mu.RUnlock()
	d, ok := doc.drawables[id]
	return d, ok
}

// BoundContext resolves id to its drawable and the context already bound to it
func (doc *Document) BoundContext(id string) (Drawable, Context, error) {
	d, ok := doc.Lookup(id)
	if !ok {
		return nil, nil, fmt.Errorf("%w with id: %s", ErrNoElement, id)
	}
	b, ok := d.(Bound)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotBound, id)
	}
	ctx, ok := b.BoundContext()
	if !ok || ctx == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotBound, id)
	}
	return d, ctx, nil
}
