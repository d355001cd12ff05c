package user

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

const collectionName = "users"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collectionName)}
}

type userDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Email         string             `bson:"email"`
	Name          string             `bson:"name,omitempty"`
	PhotoURL      string             `bson:"photoUrl,omitempty"`
	Role          string             `bson:"role,omitempty"`
	Status        string             `bson:"status,omitempty"`
	Skills        []string           `bson:"skills,omitempty"`
	Age           int                `bson:"age,omitempty"`
	Experience    int                `bson:"experience,omitempty"`
	Biography     string             `bson:"biography,omitempty"`
	AvailableDays []string           `bson:"availableDays,omitempty"`
	AvailableTime string             `bson:"availableTime,omitempty"`
	Feedback      string             `bson:"feedback,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt,omitempty"`
}

func (d userDocument) toDomain() User {
	return User{
		ID:            d.ID.Hex(),
		Email:         d.Email,
		Name:          d.Name,
		PhotoURL:      d.PhotoURL,
		Role:          Role(d.Role),
		Status:        Status(d.Status),
		Skills:        d.Skills,
		Age:           d.Age,
		Experience:    d.Experience,
		Biography:     d.Biography,
		AvailableDays: d.AvailableDays,
		AvailableTime: d.AvailableTime,
		Feedback:      d.Feedback,
		CreatedAt:     d.CreatedAt,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}

func (r *MongoRepository) Create(ctx context.Context, u *User) error {
	doc := userDocument{
		Email:         u.Email,
		Name:          u.Name,
		PhotoURL:      u.PhotoURL,
		Role:          string(u.Role),
		Status:        string(u.Status),
		Skills:        u.Skills,
		Age:           u.Age,
		Experience:    u.Experience,
		Biography:     u.Biography,
		AvailableDays: u.AvailableDays,
		AvailableTime: u.AvailableTime,
		Feedback:      u.Feedback,
		CreatedAt:     u.CreatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if dbutil.IsUniqueViolation(err) {
			return ErrUserExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*User, error) {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u := doc.toDomain()
	return &u, nil
}

func (r *MongoRepository) List(ctx context.Context, f Filter) ([]User, error) {
	filter := bson.M{}
	if f.Role != "" {
		filter["role"] = string(f.Role)
	}
	if f.Status != StatusNone {
		filter["status"] = string(f.Status)
	}
	opts := options.Find()
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) UpsertProfile(ctx context.Context, email string, p Profile) (UpsertResult, error) {
	update := bson.M{
		"$setOnInsert": bson.M{"role": string(RoleMember), "createdAt": time.Now().UTC()},
	}
	if set := profileFields(p); len(set) > 0 {
		update["$set"] = set
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, options.Update().SetUpsert(true))
	if err != nil {
		return UpsertUnchanged, err
	}
	switch {
	case res.UpsertedCount > 0:
		return UpsertCreated, nil
	case res.ModifiedCount > 0:
		return UpsertUpdated, nil
	default:
		return UpsertUnchanged, nil
	}
}

func profileFields(p Profile) bson.M {
	set := bson.M{}
	if p.Name != "" {
		set["name"] = p.Name
	}
	if p.PhotoURL != "" {
		set["photoUrl"] = p.PhotoURL
	}
	if p.Age != 0 {
		set["age"] = p.Age
	}
	if p.Experience != 0 {
		set["experience"] = p.Experience
	}
	if p.Biography != "" {
		set["biography"] = p.Biography
	}
	if len(p.Skills) > 0 {
		set["skills"] = p.Skills
	}
	if len(p.AvailableDays) > 0 {
		set["availableDays"] = p.AvailableDays
	}
	if p.AvailableTime != "" {
		set["availableTime"] = p.AvailableTime
	}
	if p.Status != StatusNone {
		set["status"] = string(p.Status)
	}
	return set
}

func (r *MongoRepository) UpdateStatus(ctx context.Context, id string, ch StatusChange) error {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return ErrUserNotFound
	}
	set := bson.M{}
	if ch.Role != nil {
		set["role"] = string(*ch.Role)
	}
	if ch.Status != nil {
		set["status"] = string(*ch.Status)
	}
	if ch.Feedback != nil {
		set["feedback"] = *ch.Feedback
	}
	if len(set) == 0 {
		_, err := r.GetByID(ctx, id)
		return err
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}
