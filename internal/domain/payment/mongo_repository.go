package payment

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection("payments")}
}

type payerDocument struct {
	Name  string `bson:"name"`
	Email string `bson:"email"`
}

type classDocument struct {
	ClassName string `bson:"className"`
	SlotID    string `bson:"slotId"`
	SlotName  string `bson:"slotName,omitempty"`
	TrainerID string `bson:"trainerId,omitempty"`
}

type paymentDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	User          payerDocument      `bson:"user"`
	Class         classDocument      `bson:"class"`
	Price         float64            `bson:"price"`
	TransactionID string             `bson:"transactionId"`
	Date          time.Time          `bson:"date"`
}

func (d paymentDocument) toDomain() Payment {
	return Payment{
		ID:   d.ID.Hex(),
		User: Payer{Name: d.User.Name, Email: d.User.Email},
		Class: ClassRef{
			ClassName: d.Class.ClassName,
			SlotID:    d.Class.SlotID,
			SlotName:  d.Class.SlotName,
			TrainerID: d.Class.TrainerID,
		},
		Price:         d.Price,
		TransactionID: d.TransactionID,
		Date:          d.Date,
	}
}

func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user.email", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})
	return err
}

func (r *MongoRepository) Create(ctx context.Context, p *Payment) error {
	res, err := r.coll.InsertOne(ctx, paymentDocument{
		User: payerDocument{Name: p.User.Name, Email: p.User.Email},
		Class: classDocument{
			ClassName: p.Class.ClassName,
			SlotID:    p.Class.SlotID,
			SlotName:  p.Class.SlotName,
			TrainerID: p.Class.TrainerID,
		},
		Price:         p.Price,
		TransactionID: p.TransactionID,
		Date:          p.Date,
	})
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return nil
}

func (r *MongoRepository) ListByUserEmail(ctx context.Context, email string) ([]Payment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"user.email": email}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	var docs []paymentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Payment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *MongoRepository) Summary(ctx context.Context) (*Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalBalance", Value: bson.D{{Key: "$sum", Value: "$price"}}},
			{Key: "transactions", Value: bson.D{{Key: "$push", Value: bson.D{
				{Key: "transactionId", Value: "$transactionId"},
				{Key: "price", Value: "$price"},
				{Key: "email", Value: "$user.email"},
			}}}},
			{Key: "uniqueEmails", Value: bson.D{{Key: "$addToSet", Value: "$user.email"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "totalBalance", Value: 1},
			{Key: "transactions", Value: 1},
			{Key: "paidMembers", Value: bson.D{{Key: "$size", Value: "$uniqueEmails"}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		TotalBalance float64 `bson:"totalBalance"`
		Transactions []struct {
			TransactionID string  `bson:"transactionId"`
			Price         float64 `bson:"price"`
			Email         string  `bson:"email"`
		} `bson:"transactions"`
		PaidMembers int `bson:"paidMembers"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	s := &Summary{Transactions: []Transaction{}}
	if len(rows) == 0 {
		return s, nil
	}
	s.TotalBalance = rows[0].TotalBalance
	s.PaidMembers = rows[0].PaidMembers
	for _, t := range rows[0].Transactions {
		s.Transactions = append(s.Transactions, Transaction{TransactionID: t.TransactionID, Price: t.Price, Email: t.Email})
	}
	return s, nil
}
