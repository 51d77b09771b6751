package firestore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

// snapshot is a decoded Firestore document.
type snapshot struct {
	ID   string
	Data map[string]any
}

// collectionAPI is the subset of *firestore.CollectionRef used here.
type collectionAPI interface {
	Add(ctx context.Context, data map[string]any) (string, error)
	Where(ctx context.Context, equal map[string]any) ([]snapshot, error)
	Update(ctx context.Context, id string, data map[string]any) error
	Delete(ctx context.Context, id string) error
}

// collectionRefWrapper adapts *firestore.CollectionRef to collectionAPI.
type collectionRefWrapper struct{ c *firestore.CollectionRef }

func (w collectionRefWrapper) Add(ctx context.Context, data map[string]any) (string, error) {
	ref, _, err := w.c.Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (w collectionRefWrapper) Where(ctx context.Context, equal map[string]any) ([]snapshot, error) {
	keys := make([]string, 0, len(equal))
	for k := range equal {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	q := w.c.Query
	for _, k := range keys {
		q = q.Where(k, "==", equal[k])
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]snapshot, 0, len(docs))
	for _, d := range docs {
		out = append(out, snapshot{ID: d.Ref.ID, Data: d.Data()})
	}
	return out, nil
}

func (w collectionRefWrapper) Update(ctx context.Context, id string, data map[string]any) error {
	updates := make([]firestore.Update, 0, len(data))
	for k, v := range data {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	_, err := w.c.Doc(id).Update(ctx, updates)
	return err
}

func (w collectionRefWrapper) Delete(ctx context.Context, id string) error {
	_, err := w.c.Doc(id).Delete(ctx, firestore.Exists)
	return err
}

var _ model.Collection = (*Collection)(nil)

// Collection stores persons in a Cloud Firestore collection.
type Collection struct {
	api collectionAPI
}

// NewClient creates a Firestore client. An empty credentialsFile falls back
// to application default credentials, or to the emulator when
// FIRESTORE_EMULATOR_HOST is set.
func NewClient(ctx context.Context, projectID, credentialsFile string) (*firestore.Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}

// NewCollection creates a Collection over the named collection of client.
func NewCollection(client *firestore.Client, collection string) *Collection {
	return NewCollectionWithAPI(collectionRefWrapper{c: client.Collection(collection)})
}

// NewCollectionWithAPI allows injecting a mockable API (used in tests).
func NewCollectionWithAPI(api collectionAPI) *Collection {
	return &Collection{api: api}
}

func (c *Collection) Insert(ctx context.Context, person model.Person) (string, error) {
	id, err := c.api.Add(ctx, person.Map())
	if err != nil {
		return "", fmt.Errorf("failed to add person: %w", err)
	}
	return id, nil
}

func (c *Collection) FindEqual(ctx context.Context, person model.Person) ([]model.Document, error) {
	return c.where(ctx, person.Map())
}

func (c *Collection) Merge(ctx context.Context, id string, fields model.Fields) error {
	if err := c.api.Update(ctx, id, fields.Map()); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to merge person: %w", err)
	}
	return nil
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, id); err != nil {
		if status.Code(err) == codes.NotFound {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (c *Collection) All(ctx context.Context) ([]model.Document, error) {
	return c.where(ctx, nil)
}

func (c *Collection) where(ctx context.Context, equal map[string]any) ([]model.Document, error) {
	snaps, err := c.api.Where(ctx, equal)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}

	out := make([]model.Document, 0, len(snaps))
	for _, s := range snaps {
		p, err := decodePerson(s.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode person %s: %w", s.ID, err)
		}
		out = append(out, model.Document{ID: s.ID, Person: p})
	}
	return out, nil
}

var errFieldType = errors.New("unexpected field type")

// decodePerson maps Firestore values back to a Person. Integers come back
// as int64; documents written by other clients may carry doubles.
func decodePerson(data map[string]any) (model.Person, error) {
	var p model.Person

	if v, ok := data[model.FieldFirstName]; ok {
		s, ok := v.(string)
		if !ok {
			return model.Person{}, fmt.Errorf("%s: %w %T", model.FieldFirstName, errFieldType, v)
		}
		p.FirstName = s
	}
	if v, ok := data[model.FieldLastName]; ok {
		s, ok := v.(string)
		if !ok {
			return model.Person{}, fmt.Errorf("%s: %w %T", model.FieldLastName, errFieldType, v)
		}
		p.LastName = s
	}
	if v, ok := data[model.FieldAge]; ok {
		switch n := v.(type) {
		case int64:
			p.Age = int(n)
		case int:
			p.Age = n
		case float64:
			p.Age = int(n)
		default:
			return model.Person{}, fmt.Errorf("%s: %w %T", model.FieldAge, errFieldType, v)
		}
	}
	return p, nil
}
