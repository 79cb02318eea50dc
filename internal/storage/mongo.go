package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// document is the single-collection shape every key-value pair is stored
// as: Mongo's own _id doubles as our flat key, so Get/Set/Delete are all
// single-document operations with no secondary indexes to maintain.
type document struct {
	Key   string `bson:"_id"`
	Value []byte `bson:"value"`
}

// Mongo is a Store backed by a single MongoDB collection. It is selected
// by STORAGE_BACKEND=mongo; the in-memory Store remains the default and
// the only backend exercised by this repo's tests, since running them
// against Mongo would require a live cluster.
type Mongo struct {
	collection *mongo.Collection
}

// NewMongo connects to uri and returns a Mongo store backed by
// database.collection. The context bounds only the initial connection
// handshake, not subsequent operations.
func NewMongo(ctx context.Context, uri, database, collection string) (*Mongo, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return &Mongo{collection: client.Database(database).Collection(collection)}, nil
}

// Set implements Store via an upsert keyed on _id.
func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.collection.ReplaceOne(
		ctx,
		bson.M{"_id": key},
		document{Key: key, Value: value},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Get implements Store.
func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc document
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.Value, nil
}

// Delete implements Store.
func (m *Mongo) Delete(ctx context.Context, key string) error {
	_, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}

// Flush implements Store.
func (m *Mongo) Flush(ctx context.Context) error {
	_, err := m.collection.DeleteMany(ctx, bson.M{})
	return err
}
