package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hangtime-app/hangtime/pkg/errors"
)

// Connect opens a mongo database handle shared by a subsystem's
// collections. Each subsystem owns its connection and closes it via
// Disconnect on the returned client.
func Connect(ctx context.Context, cfg MongoConfig) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout).
		SetMinPoolSize(cfg.Pool.MinSize).
		SetMaxPoolSize(cfg.Pool.MaxSize)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	return client.Database(cfg.Database), nil
}

// Disconnect closes the client behind a database handle.
func Disconnect(ctx context.Context, db *mongo.Database) error {
	err := db.Client().Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
