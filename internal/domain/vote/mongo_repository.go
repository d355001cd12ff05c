package vote

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fitnflex/internal/pkg/dbutil"
)

type MongoRepository struct {
	up   *mongo.Collection
	down *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{up: db.Collection("upVotes"), down: db.Collection("downVotes")}
}

type voteDocument struct {
	BlogID string `bson:"blogId"`
	Email  string `bson:"email"`
	Vote   string `bson:"vote"`
}

func (r *MongoRepository) coll(set Set) *mongo.Collection {
	if set == Up {
		return r.up
	}
	return r.down
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "blogId", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, c := range []*mongo.Collection{r.up, r.down} {
		if _, err := c.Indexes().CreateOne(ctx, idx); err != nil {
			return err
		}
	}
	return nil
}

func pair(blogID, email string) bson.M {
	return bson.M{"blogId": blogID, "email": email}
}

func (r *MongoRepository) Exists(ctx context.Context, set Set, blogID, email string) (bool, error) {
	n, err := r.coll(set).CountDocuments(ctx, pair(blogID, email), options.Count().SetLimit(1))
	return n > 0, err
}

func (r *MongoRepository) Insert(ctx context.Context, set Set, v Vote) (bool, error) {
	_, err := r.coll(set).InsertOne(ctx, voteDocument{BlogID: v.BlogID, Email: v.Email, Vote: string(v.Direction)})
	if dbutil.IsUniqueViolation(err) {
		return false, nil
	}
	return err == nil, err
}

func (r *MongoRepository) Delete(ctx context.Context, set Set, blogID, email string) (bool, error) {
	res, err := r.coll(set).DeleteOne(ctx, pair(blogID, email))
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
