package subscription

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitnflex/internal/pkg/dbutil"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("subs")}
}

type subscriptionDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoRepository) Create(ctx context.Context, s *Subscription) error {
	res, err := r.coll.InsertOne(ctx, subscriptionDocument{Name: s.Name, Email: s.Email, CreatedAt: s.CreatedAt})
	if err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrAlreadySubscribed
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Subscription, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []subscriptionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Subscription, 0, len(docs))
	for _, d := range docs {
		out = append(out, Subscription{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, CreatedAt: d.CreatedAt})
	}
	return out, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
