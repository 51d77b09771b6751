package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
)

// collectionAPI is the subset of *mongo.Collection used here; tests swap in a fake.
type collectionAPI interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	UpdateByID(ctx context.Context, id interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

type personDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Age       int                `bson:"age"`
}

func (d personDocument) toModel() model.Document {
	return model.Document{
		ID: d.ID.Hex(),
		Person: model.Person{
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Age:       d.Age,
		},
	}
}

var _ model.Collection = (*Collection)(nil)

// Collection stores persons as documents in a MongoDB collection.
type Collection struct {
	api collectionAPI
}

// Connect dials MongoDB and verifies the primary is reachable.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}
	return client, nil
}

// NewCollection creates a Collection over database.collection of client.
func NewCollection(client *mongo.Client, database, collection string) *Collection {
	return NewCollectionWithAPI(client.Database(database).Collection(collection))
}

// NewCollectionWithAPI allows injecting a mockable API (used in tests).
func NewCollectionWithAPI(api collectionAPI) *Collection {
	return &Collection{api: api}
}

func (c *Collection) Insert(ctx context.Context, person model.Person) (string, error) {
	res, err := c.api.InsertOne(ctx, personDocument{
		FirstName: person.FirstName,
		LastName:  person.LastName,
		Age:       person.Age,
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert person: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (c *Collection) FindEqual(ctx context.Context, person model.Person) ([]model.Document, error) {
	filter := bson.D{
		{Key: model.FieldFirstName, Value: person.FirstName},
		{Key: model.FieldLastName, Value: person.LastName},
		{Key: model.FieldAge, Value: person.Age},
	}
	return c.find(ctx, filter)
}

func (c *Collection) Merge(ctx context.Context, id string, fields model.Fields) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	res, err := c.api.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.M(fields.Map())}})
	if err != nil {
		return fmt.Errorf("failed to merge person: %w", err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (c *Collection) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	res, err := c.api.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	if res.DeletedCount == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (c *Collection) All(ctx context.Context) ([]model.Document, error) {
	return c.find(ctx, bson.D{})
}

func (c *Collection) find(ctx context.Context, filter bson.D) ([]model.Document, error) {
	cur, err := c.api.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}

	var docs []personDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode persons: %w", err)
	}

	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
