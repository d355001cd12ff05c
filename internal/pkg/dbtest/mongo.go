//go:build integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoOnce   sync.Once
	mongoClient *mongo.Client
	mongoErr    error
)

// Mongo returns a database on a shared MongoDB container. Each test gets
// its own database, dropped on cleanup. The container is reaped by
// testcontainers when the test binary exits.
func Mongo(t *testing.T) *mongo.Database {
	t.Helper()
	mongoOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := mongodb.Run(ctx, "mongo:7")
		if err != nil {
			mongoErr = fmt.Errorf("start mongodb container: %w", err)
			return
		}
		uri, err := container.ConnectionString(ctx)
		if err != nil {
			mongoErr = fmt.Errorf("mongodb connection string: %w", err)
			return
		}
		mongoClient, mongoErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
	})
	require.NoError(t, mongoErr)

	name := strings.NewReplacer("/", "_", " ", "_", ".", "_").Replace(t.Name())
	if len(name) > 60 {
		name = name[:60]
	}
	db := mongoClient.Database("test_" + name)
	t.Cleanup(func() { _ = db.Drop(context.Background()) })
	return db
}
