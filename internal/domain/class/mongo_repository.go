package class

import (
	"context"
	"errors"
	"regexp"
	"strings"
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
	return &MongoRepository{coll: db.Collection("classes")}
}

type classDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Image        string             `bson:"image,omitempty"`
	TotalBooking int                `bson:"totalBooking"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
}

func (d classDocument) toDomain() Class {
	return Class{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		Image:        d.Image,
		TotalBooking: d.TotalBooking,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: 1}},
			Options: options.Index().
				SetName("name_ci_unique").
				SetUnique(true).
				SetCollation(&options.Collation{Locale: "en", Strength: 2}),
		},
		{Keys: bson.D{{Key: "totalBooking", Value: -1}}},
	})
	return err
}

// exactName matches name ignoring case, with regex metacharacters escaped.
func exactName(name string) bson.M {
	return bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}
}

func searchFilter(search string) bson.M {
	s := strings.TrimSpace(search)
	if s == "" {
		return bson.M{}
	}
	return bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}}
}

func (r *MongoRepository) Create(ctx context.Context, c *Class) error {
	res, err := r.coll.InsertOne(ctx, classDocument{
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		TotalBooking: c.TotalBooking,
		CreatedAt:    c.CreatedAt,
	})
	if err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrClassExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]Class, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []classDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Class, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) List(ctx context.Context, search string, skip, limit int) ([]Class, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	return r.find(ctx, searchFilter(search), opts)
}

func (r *MongoRepository) Count(ctx context.Context, search string) (int64, error) {
	return r.coll.CountDocuments(ctx, searchFilter(search))
}

func (r *MongoRepository) Names(ctx context.Context) ([]string, error) {
	classes, err := r.find(ctx, bson.M{}, options.Find().
		SetProjection(bson.M{"name": 1}).
		SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(classes))
	for _, c := range classes {
		names = append(names, c.Name)
	}
	return names, nil
}

func (r *MongoRepository) TopBooked(ctx context.Context, limit int) ([]Class, error) {
	return r.find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "totalBooking", Value: -1}, {Key: "name", Value: 1}}).
		SetLimit(int64(limit)))
}

func (r *MongoRepository) GetByName(ctx context.Context, name string) (*Class, error) {
	var doc classDocument
	err := r.coll.FindOne(ctx, exactName(name)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	c := doc.toDomain()
	return &c, nil
}

func (r *MongoRepository) IncrementBooking(ctx context.Context, name string) error {
	res, err := r.coll.UpdateOne(ctx, exactName(name), bson.M{"$inc": bson.M{"totalBooking": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrClassNotFound
	}
	return nil
}
