/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of datastore.CrewStore for testing
package mock

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/crewlookup/storagemodels"
)

// CrewStore is a mock implementation of datastore.CrewStore for testing.
// Records are kept per (movieId, crewRole) partition in insertion order.
type CrewStore struct {
	mu         sync.RWMutex
	partitions map[string][]storagemodels.CrewRecord
	queryFunc  func(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error)
	queryError error
	putError   error
	queries    int
}

// New creates a new mock CrewStore
func New() *CrewStore {
	return &CrewStore{
		partitions: make(map[string][]storagemodels.CrewRecord),
	}
}

// WithQueryFunc sets a custom query function for testing
func (m *CrewStore) WithQueryFunc(f func(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error)) *CrewStore {
	m.queryFunc = f
	return m
}

// WithQueryError makes Query and QueryCrew return an error
func (m *CrewStore) WithQueryError(err error) *CrewStore {
	m.queryError = err
	return m
}

// WithPutError makes PutBatch return an error
func (m *CrewStore) WithPutError(err error) *CrewStore {
	m.putError = err
	return m
}

// QueryCrew returns the records stored under (movieID, role)
func (m *CrewStore) QueryCrew(ctx context.Context, movieID int, role string) ([]storagemodels.CrewRecord, error) {
	return m.Query(ctx, storagemodels.NewCrewQueryParams(movieID, role))
}

// Query resolves the :m and :r placeholders of a crew key condition against the stored partitions
func (m *CrewStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error) {
	m.mu.Lock()
	m.queries++
	m.mu.Unlock()

	if m.queryError != nil {
		return nil, m.queryError
	}
	if m.queryFunc != nil {
		return m.queryFunc(ctx, params)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	movieID, role, err := partitionFromParams(params)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.partitions[partitionKey(movieID, role)]
	results := make([]storagemodels.CrewRecord, len(stored))
	copy(results, stored)
	return results, nil
}

// PutBatch appends records to their partitions
func (m *CrewStore) PutBatch(ctx context.Context, records []storagemodels.CrewRecord, opts ...storagemodels.WriteOption) (int, error) {
	if m.putError != nil {
		return 0, m.putError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		key := partitionKey(rec.MovieID, rec.CrewRole)
		m.partitions[key] = append(m.partitions[key], rec)
	}
	return len(records), nil
}

// Helper methods for testing

// Add stores records directly, bypassing PutBatch error simulation
func (m *CrewStore) Add(records ...storagemodels.CrewRecord) *CrewStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range records {
		key := partitionKey(rec.MovieID, rec.CrewRole)
		m.partitions[key] = append(m.partitions[key], rec)
	}
	return m
}

// Count returns the number of stored records
func (m *CrewStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, p := range m.partitions {
		n += len(p)
	}
	return n
}

// Queries returns how many queries have been issued
func (m *CrewStore) Queries() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.queries
}

// Clear removes all data
func (m *CrewStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.partitions = make(map[string][]storagemodels.CrewRecord)
}

func partitionKey(movieID int, role string) string {
	return fmt.Sprintf("%d|%s", movieID, role)
}

func partitionFromParams(params *storagemodels.QueryParams) (int, string, error) {
	if params == nil || params.KeyConditionExpression != storagemodels.CrewKeyCondition {
		return 0, "", fmt.Errorf("mock: unsupported query")
	}
	m, ok := params.ExpressionAttributeValues[":m"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, "", fmt.Errorf("mock: :m must be a number")
	}
	r, ok := params.ExpressionAttributeValues[":r"].(*types.AttributeValueMemberS)
	if !ok {
		return 0, "", fmt.Errorf("mock: :r must be a string")
	}
	movieID, err := strconv.Atoi(m.Value)
	if err != nil {
		return 0, "", fmt.Errorf("mock: %w", err)
	}
	return movieID, r.Value, nil
}
