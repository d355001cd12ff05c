package database

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/gorm"

	"fitnflex/internal/config"
	"fitnflex/internal/domain/blog"
	"fitnflex/internal/domain/class"
	"fitnflex/internal/domain/payment"
	"fitnflex/internal/domain/slot"
	"fitnflex/internal/domain/subscription"
	"fitnflex/internal/domain/testimonial"
	"fitnflex/internal/domain/user"
	"fitnflex/internal/domain/vote"
)

// Store bundles one repository per collection over a single backend.
type Store struct {
	Backend string

	Users         user.Repository
	Classes       class.Repository
	Slots         slot.Repository
	Payments      payment.Repository
	Blogs         blog.Repository
	Votes         vote.Repository
	Subscriptions subscription.Repository
	Testimonials  testimonial.Repository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

type migrator interface {
	Migrate(ctx context.Context) error
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// Open connects to the configured store and prepares its schema or indexes.
func Open(ctx context.Context, cfg config.Database, log *slog.Logger) (*Store, error) {
	dsn := cfg.DSN()
	if IsMongoDSN(dsn) {
		client, err := ConnectMongo(ctx, dsn)
		if err != nil {
			return nil, err
		}
		s := NewMongoStore(client, client.Database(cfg.Name))
		if err := s.Prepare(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		log.InfoContext(ctx, "store ready", "backend", s.Backend, "database", cfg.Name)
		return s, nil
	}

	db, err := Connect(ctx, dsn, log)
	if err != nil {
		return nil, err
	}
	s := NewGormStore(db)
	if err := s.Prepare(ctx); err != nil {
		_ = s.Close(ctx)
		return nil, err
	}
	log.InfoContext(ctx, "store ready", "backend", s.Backend)
	return s, nil
}

func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Backend:       "sql",
		Users:         user.NewGormRepository(db),
		Classes:       class.NewGormRepository(db),
		Slots:         slot.NewGormRepository(db),
		Payments:      payment.NewGormRepository(db),
		Blogs:         blog.NewGormRepository(db),
		Votes:         vote.NewGormRepository(db),
		Subscriptions: subscription.NewGormRepository(db),
		Testimonials:  testimonial.NewGormRepository(db),
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

func NewMongoStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Backend:       "mongo",
		Users:         user.NewMongoRepository(db),
		Classes:       class.NewMongoRepository(db),
		Slots:         slot.NewMongoRepository(db),
		Payments:      payment.NewMongoRepository(db),
		Blogs:         blog.NewMongoRepository(db),
		Votes:         vote.NewMongoRepository(db),
		Subscriptions: subscription.NewMongoRepository(db),
		Testimonials:  testimonial.NewMongoRepository(db),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		close: client.Disconnect,
	}
}

func (s *Store) repositories() []any {
	return []any{s.Users, s.Classes, s.Slots, s.Payments, s.Blogs, s.Votes, s.Subscriptions, s.Testimonials}
}

// Prepare runs gorm migrations or creates Mongo indexes, whichever the
// repositories support. Open calls it; stores built by hand must too.
func (s *Store) Prepare(ctx context.Context) error {
	for _, r := range s.repositories() {
		switch r := r.(type) {
		case migrator:
			if err := r.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate %T: %w", r, err)
			}
		case indexer:
			if err := r.EnsureIndexes(ctx); err != nil {
				return fmt.Errorf("ensure indexes %T: %w", r, err)
			}
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
