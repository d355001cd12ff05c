package blog

import (
	"context"
	"errors"
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
	return &MongoRepository{coll: db.Collection("blogs")}
}

type blogDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Author      string             `bson:"author,omitempty"`
	AuthorEmail string             `bson:"authorEmail,omitempty"`
	Image       string             `bson:"image,omitempty"`
	Description string             `bson:"description,omitempty"`
	Content     string             `bson:"content,omitempty"`
	PostDate    time.Time          `bson:"postDate"`
	Likes       int                `bson:"likes"`
	Dislikes    int                `bson:"dislikes"`
}

func (d blogDocument) toDomain() Blog {
	return Blog{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Author:      d.Author,
		AuthorEmail: d.AuthorEmail,
		Image:       d.Image,
		Description: d.Description,
		Content:     d.Content,
		PostDate:    d.PostDate,
		Likes:       d.Likes,
		Dislikes:    d.Dislikes,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "postDate", Value: -1}}})
	return err
}

func (r *MongoRepository) Create(ctx context.Context, b *Blog) error {
	res, err := r.coll.InsertOne(ctx, blogDocument{
		Title:       b.Title,
		Author:      b.Author,
		AuthorEmail: b.AuthorEmail,
		Image:       b.Image,
		Description: b.Description,
		Content:     b.Content,
		PostDate:    b.PostDate,
		Likes:       b.Likes,
		Dislikes:    b.Dislikes,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) List(ctx context.Context, skip, limit int) ([]Blog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "postDate", Value: -1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []blogDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Blog, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Blog, error) {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return nil, ErrBlogNotFound
	}
	var doc blogDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBlogNotFound
	}
	if err != nil {
		return nil, err
	}
	b := doc.toDomain()
	return &b, nil
}

func (r *MongoRepository) Exists(ctx context.Context, id string) (bool, error) {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return false, nil
	}
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *MongoRepository) AdjustVotes(ctx context.Context, id string, likes, dislikes int) error {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return ErrBlogNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"likes": likes, "dislikes": dislikes}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrBlogNotFound
	}
	return nil
}
