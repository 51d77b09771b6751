package main

import (
	"context"
	"fmt"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/config"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/model"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/repository/firestore"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/repository/memory"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/repository/mongo"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/repository/postgres"
)

// openCollection connects the configured backend and returns the collection
// with a function releasing its resources.
func openCollection(ctx context.Context, cfg *config.Config) (model.Collection, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error { return client.Disconnect(context.Background()) }
		return mongo.NewCollection(client, cfg.Mongo.Database, cfg.Store.Collection), closeFn, nil

	case config.BackendFirestore:
		client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, cfg.Firestore.CredentialsFile)
		if err != nil {
			return nil, nil, err
		}
		return firestore.NewCollection(client, cfg.Store.Collection), client.Close, nil

	case config.BackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewCollection(db, cfg.Store.Collection), db.Close, nil

	case config.BackendMemory:
		return memory.NewCollection(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
