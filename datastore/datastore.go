/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/crewlookup/storagemodels"
)

// CrewStore reads and writes crew records.
type CrewStore interface {
	// QueryCrew returns every record of the (movieID, role) partition, in storage order.
	QueryCrew(ctx context.Context, movieID int, role string) ([]storagemodels.CrewRecord, error)

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error)

	PutBatch(ctx context.Context, records []storagemodels.CrewRecord, opts ...storagemodels.WriteOption) (int, error)
}
