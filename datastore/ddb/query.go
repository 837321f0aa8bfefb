/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
)

// QueryCrew returns every record stored under (movieID, role).
func (d *CrewDataStore) QueryCrew(ctx context.Context, movieID int, role string) ([]storagemodels.CrewRecord, error) {
	return d.Query(ctx, storagemodels.NewCrewQueryParams(movieID, role))
}

// Query runs params against the store's table and follows LastEvaluatedKey until
// the result set is exhausted. The table name always comes from the datastore.
func (d *CrewDataStore) Query(ctx context.Context, params *storagemodels.QueryParams) ([]storagemodels.CrewRecord, error) {
	input := &sdk.QueryInput{
		TableName:                 &d.tableName,
		KeyConditionExpression:    &params.KeyConditionExpression,
		ExpressionAttributeValues: params.ExpressionAttributeValues,
		Limit:                     params.Limit,
		ExclusiveStartKey:         params.ExclusiveStartKey,
		ConsistentRead:            params.ConsistentRead,
	}

	results := make([]storagemodels.CrewRecord, 0)
	paginator := sdk.NewQueryPaginator(d.client, input)
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.NewBackendError("Query", err)
		}
		for _, item := range out.Items {
			rec, err := decodeItem(item)
			if err != nil {
				return nil, errors.NewBackendError("Query", fmt.Errorf("malformed item: %w", err))
			}
			results = append(results, rec)
		}
	}
	return results, nil
}

// decodeItem unmarshals a raw item generically so unknown attributes survive.
func decodeItem(item map[string]types.AttributeValue) (storagemodels.CrewRecord, error) {
	var generic map[string]interface{}
	if err := attributevalue.UnmarshalMap(item, &generic); err != nil {
		return storagemodels.CrewRecord{}, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return storagemodels.NewCrewRecordFromMap(generic)
}

// encodeItem is the inverse of decodeItem.
func encodeItem(rec storagemodels.CrewRecord) (map[string]types.AttributeValue, error) {
	av, err := attributevalue.MarshalMap(rec.AsMap())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return av, nil
}
