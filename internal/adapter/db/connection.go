package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"taskhub/internal/config"
)

const connectTimeout = 10 * time.Second

var (
	clientOnce sync.Once
	client     *mongo.Client
	clientErr  error
)

// Connect returns the process-wide mongo client, dialing it on first
// use. The handle is reused for the process lifetime; the only
// teardown is the Disconnect deferred in main.
func Connect(ctx context.Context, conf *config.Config) (*mongo.Client, error) {
	clientOnce.Do(func() {
		dialCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()

		c, err := mongo.Connect(dialCtx, options.Client().ApplyURI(conf.MongoURI))
		if err != nil {
			clientErr = err
			return
		}
		if err := c.Ping(dialCtx, readpref.Primary()); err != nil {
			clientErr = err
			return
		}
		client = c
	})
	return client, clientErr
}

// Collections groups the store's three document collections.
type Collections struct {
	Users         *mongo.Collection
	Tasks         *mongo.Collection
	Notifications *mongo.Collection
}

func NewCollections(client *mongo.Client, database string) Collections {
	d := client.Database(database)
	return Collections{
		Users:         d.Collection("users"),
		Tasks:         d.Collection("tasks"),
		Notifications: d.Collection("notifications"),
	}
}
