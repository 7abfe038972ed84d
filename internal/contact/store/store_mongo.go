package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"agenda/internal/contact"
	platformmongo "agenda/internal/platform/mongo"
)

const collectionName = "contacts"

// Mongo is the Mongo-backed Store. There is no unique index on telefono: the
// duplicate check lives in the service as a pre-insert lookup, so two
// concurrent creates with the same number can race. Accepted gap.
type Mongo struct {
	coll *driver.Collection
}

func NewMongo(client *platformmongo.Client, database string) *Mongo {
	return &Mongo{coll: client.Database(database).Collection(collectionName)}
}

func (s *Mongo) Insert(ctx context.Context, rec contact.Record) (contact.Record, error) {
	res, err := s.coll.InsertOne(ctx, rec)
	if err != nil {
		return contact.Record{}, fmt.Errorf("insert contact: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return contact.Record{}, fmt.Errorf("insert contact: unexpected inserted id type %T", res.InsertedID)
	}
	rec.ID = oid
	return rec, nil
}

func (s *Mongo) FindByID(ctx context.Context, id string) (contact.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return contact.Record{}, ErrNotFound
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *Mongo) FindByTelefono(ctx context.Context, telefono string) (contact.Record, error) {
	return s.findOne(ctx, bson.M{"telefono": telefono})
}

func (s *Mongo) findOne(ctx context.Context, filter bson.M) (contact.Record, error) {
	var rec contact.Record
	err := s.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, driver.ErrNoDocuments) {
		return contact.Record{}, ErrNotFound
	}
	if err != nil {
		return contact.Record{}, fmt.Errorf("find contact: %w", err)
	}
	return rec, nil
}

func (s *Mongo) FindAll(ctx context.Context) ([]contact.Record, error) {
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	recs := make([]contact.Record, 0)
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode contacts: %w", err)
	}
	return recs, nil
}

func (s *Mongo) Update(ctx context.Context, id string, rec contact.Record) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"name":     rec.Name,
		"telefono": rec.Telefono,
		"country":  rec.Country,
		"timezone": rec.Timezone,
	}})
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Mongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
