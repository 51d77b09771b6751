package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

var _ model.Collection = (*Collection)(nil)

// Collection is an in-process person collection. Scans return documents
// in insertion order.
type Collection struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]model.Person
}

func NewCollection() *Collection {
	return &Collection{
		byID: make(map[string]model.Person),
	}
}

func (c *Collection) Insert(ctx context.Context, person model.Person) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.NewString()
	c.byID[id] = person
	c.order = append(c.order, id)
	return id, nil
}

func (c *Collection) FindEqual(ctx context.Context, person model.Person) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []model.Document
	for _, id := range c.order {
		if p := c.byID[id]; p == person {
			out = append(out, model.Document{ID: id, Person: p})
		}
	}
	return out, nil
}

func (c *Collection) Merge(ctx context.Context, id string, fields model.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.byID[id]
	if !ok {
		return model.ErrNotFound
	}
	c.byID[id] = fields.Apply(p)
	return nil
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return model.ErrNotFound
	}
	delete(c.byID, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *Collection) All(ctx context.Context) ([]model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Document, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, model.Document{ID: id, Person: c.byID[id]})
	}
	return out, nil
}
