package testimonial

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("testimonials")}
}

type testimonialDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Image     string             `bson:"image,omitempty"`
	Rating    float64            `bson:"rating"`
	Review    string             `bson:"review"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

// EnsureIndexes is a no-op; listings scan the whole collection.
func (r *MongoRepository) EnsureIndexes(context.Context) error { return nil }

func (r *MongoRepository) Create(ctx context.Context, t *Testimonial) error {
	doc := testimonialDocument{Name: t.Name, Image: t.Image, Rating: t.Rating, Review: t.Review, CreatedAt: t.CreatedAt}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = id.Hex()
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context) ([]Testimonial, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var docs []testimonialDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, Testimonial{ID: d.ID.Hex(), Name: d.Name, Image: d.Image, Rating: d.Rating, Review: d.Review, CreatedAt: d.CreatedAt})
	}
	return out, nil
}
