/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	sterrors "errors"
	"fmt"
	"time"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
)

// PutBatch writes records with BatchWriteItem, resubmitting unprocessed items with
// linear backoff. It returns how many records the table acknowledged.
func (d *CrewDataStore) PutBatch(ctx context.Context, records []storagemodels.CrewRecord, opts ...storagemodels.WriteOption) (int, error) {
	options := storagemodels.DefaultWriteOptions()
	for _, opt := range opts {
		opt(&options)
	}

	progress := storagemodels.WriteProgress{
		ItemsTotal: len(records),
		StartTime:  time.Now(),
	}
	report := func() {
		if options.ProgressHandler != nil {
			options.ProgressHandler(progress)
		}
	}

	for start := 0; start < len(records); start += options.BatchSize {
		end := start + options.BatchSize
		if end > len(records) {
			end = len(records)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, rec := range records[start:end] {
			item, err := encodeItem(rec)
			if err != nil {
				return progress.ItemsWritten, err
			}
			requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: item}})
		}

		written, batches, err := d.writeWithRetry(ctx, requests, options)
		progress.ItemsWritten += written
		progress.Batches += batches
		report()
		if err != nil {
			return progress.ItemsWritten, err
		}
	}

	return progress.ItemsWritten, nil
}

// writeWithRetry submits one batch and keeps resubmitting whatever DynamoDB hands
// back as unprocessed until it drains or MaxRetries is spent.
func (d *CrewDataStore) writeWithRetry(
	ctx context.Context,
	requests []types.WriteRequest,
	options storagemodels.WriteOptions,
) (written int, batches int, err error) {
	pending := requests

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * options.RetryBackoff
			select {
			case <-ctx.Done():
				return written, batches, errors.NewBackendError("BatchWriteItem", ctx.Err())
			case <-time.After(backoff):
			}
		}

		batches++
		out, callErr := d.client.BatchWriteItem(ctx, &sdk.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{d.tableName: pending},
		})
		if callErr != nil {
			if !isRetryableError(callErr) {
				return written, batches, errors.NewBackendError("BatchWriteItem", callErr)
			}
			err = callErr
			continue
		}
		err = nil

		unprocessed := out.UnprocessedItems[d.tableName]
		written += len(pending) - len(unprocessed)
		if len(unprocessed) == 0 {
			return written, batches, nil
		}
		pending = unprocessed
	}

	if err != nil {
		return written, batches, errors.NewBackendError("BatchWriteItem", err)
	}
	return written, batches, errors.NewBackendError("BatchWriteItem",
		fmt.Errorf("%d items still unprocessed after %d retries", len(pending), options.MaxRetries))
}

// isRetryableError determines if a DynamoDB error is retryable
func isRetryableError(err error) bool {
	var pte *types.ProvisionedThroughputExceededException
	var rle *types.RequestLimitExceeded
	var ise *types.InternalServerError
	switch {
	case sterrors.As(err, &pte), sterrors.As(err, &rle), sterrors.As(err, &ise):
		return true
	}

	// Check for AWS SDK retryable errors
	var retryable interface{ RetryableError() bool }
	if sterrors.As(err, &retryable) {
		return retryable.RetryableError()
	}

	return false
}
