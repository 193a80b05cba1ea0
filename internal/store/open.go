package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const (
	BackendPostgres  = "postgres"
	BackendFirestore = "firestore"
	BackendMemory    = "memory"
)

type OpenParams struct {
	Backend            string
	DBPool             *pgxpool.Pool
	FirestoreProjectID string
}

// Open returns the history store for the backend, and a func releasing the
// resources it owns. The postgres pool stays owned by the caller.
func Open(ctx context.Context, params OpenParams) (Store, func(), error) {
	noop := func() {}

	switch params.Backend {
	case BackendPostgres:
		if params.DBPool == nil {
			return nil, noop, errors.New("postgres store: nil db pool")
		}
		return NewPsqlStore(params.DBPool), noop, nil
	case BackendFirestore:
		client, err := firestore.NewClient(ctx, params.FirestoreProjectID)
		if err != nil {
			return nil, noop, fmt.Errorf("new firestore client: %w", err)
		}
		closeFn := func() {
			if err := client.Close(); err != nil {
				log.Errorf("close firestore client: %s", err)
			}
		}
		return NewFirestoreStore(client), closeFn, nil
	case BackendMemory:
		log.Warnln("using in-memory history store, nothing will be persisted")
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage backend: %s", params.Backend)
	}
}
