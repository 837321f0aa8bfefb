/*
Package datastore defines the persistence interface for crew records.

	type CrewStore interface {
	    QueryCrew(ctx context.Context, movieID int, role string) ([]storagemodels.CrewRecord, error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error)
	    PutBatch(ctx context.Context, records []storagemodels.CrewRecord, opts ...storagemodels.WriteOption) (int, error)
	}

Implementations:
  - ddb: DynamoDB implementation over a single table keyed by (movieId, crewRole)
  - mock: In-memory mock implementation for testing

Lookups only use QueryCrew. PutBatch exists for the seeding tool.
*/
package datastore
