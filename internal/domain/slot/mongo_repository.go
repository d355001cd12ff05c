package slot

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
	return &MongoRepository{coll: db.Collection("slots")}
}

type trainerDocument struct {
	ID    string `bson:"id"`
	Name  string `bson:"name,omitempty"`
	Email string `bson:"email"`
}

type bookerDocument struct {
	Name      string `bson:"name"`
	Email     string `bson:"email"`
	ClassName string `bson:"class_name"`
}

type slotDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	SlotName  string             `bson:"slotName"`
	SlotTime  string             `bson:"slotTime,omitempty"`
	Days      []string           `bson:"days,omitempty"`
	ClassName string             `bson:"className"`
	Trainer   trainerDocument    `bson:"trainer"`
	Status    string             `bson:"status"`
	BookedBy  *bookerDocument    `bson:"bookedBy,omitempty"`
	CreatedAt time.Time          `bson:"createdAt,omitempty"`
}

func (d slotDocument) toDomain() Slot {
	s := Slot{
		ID:        d.ID.Hex(),
		SlotName:  d.SlotName,
		SlotTime:  d.SlotTime,
		Days:      d.Days,
		ClassName: d.ClassName,
		Trainer:   Trainer{ID: d.Trainer.ID, Name: d.Trainer.Name, Email: d.Trainer.Email},
		Status:    Status(d.Status),
		CreatedAt: d.CreatedAt,
	}
	if d.BookedBy != nil {
		s.BookedBy = &Booker{Name: d.BookedBy.Name, Email: d.BookedBy.Email, ClassName: d.BookedBy.ClassName}
	}
	return s
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "trainer.email", Value: 1}}},
		{Keys: bson.D{{Key: "trainer.id", Value: 1}, {Key: "status", Value: 1}}},
	})
	return err
}

func (r *MongoRepository) InsertMany(ctx context.Context, slots []Slot) error {
	docs := make([]any, 0, len(slots))
	for _, s := range slots {
		docs = append(docs, slotDocument{
			SlotName:  s.SlotName,
			SlotTime:  s.SlotTime,
			Days:      s.Days,
			ClassName: s.ClassName,
			Trainer:   trainerDocument{ID: s.Trainer.ID, Name: s.Trainer.Name, Email: s.Trainer.Email},
			Status:    string(s.Status),
			CreatedAt: s.CreatedAt,
		})
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, id := range res.InsertedIDs {
		if oid, ok := id.(primitive.ObjectID); ok && i < len(slots) {
			slots[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*Slot, error) {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return nil, ErrSlotNotFound
	}
	var doc slotDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	s := doc.toDomain()
	return &s, nil
}

func (r *MongoRepository) list(ctx context.Context, filter bson.M) ([]Slot, error) {
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []slotDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Slot, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) ListByTrainerEmail(ctx context.Context, email string) ([]Slot, error) {
	return r.list(ctx, bson.M{"trainer.email": email})
}

func (r *MongoRepository) ListAvailableByTrainerID(ctx context.Context, trainerID string) ([]Slot, error) {
	return r.list(ctx, bson.M{"trainer.id": trainerID, "status": string(StatusAvailable)})
}

func (r *MongoRepository) MarkBooked(ctx context.Context, id string, by Booker) error {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return ErrSlotNotFound
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(StatusAvailable)},
		bson.M{"$set": bson.M{
			"status":   string(StatusBooked),
			"bookedBy": bookerDocument{Name: by.Name, Email: by.Email, ClassName: by.ClassName},
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *MongoRepository) DeleteOwned(ctx context.Context, id, trainerEmail string) error {
	oid, ok := dbutil.ObjectID(id)
	if !ok {
		return ErrSlotNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "trainer.email": trainerEmail})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *MongoRepository) HasBooking(ctx context.Context, trainerEmail, memberEmail string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx,
		bson.M{"trainer.email": trainerEmail, "bookedBy.email": memberEmail},
		options.Count().SetLimit(1))
	return n > 0, err
}
