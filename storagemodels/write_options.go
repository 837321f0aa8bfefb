/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "time"

// WriteOptions configures batch writes
type WriteOptions struct {
	BatchSize       int                 // Items per BatchWriteItem call (default and max: 25)
	MaxRetries      int                 // Resubmissions of unprocessed items (default: 5)
	RetryBackoff    time.Duration       // Backoff step between resubmissions (default: 200ms)
	ProgressHandler func(WriteProgress) // Optional progress callback
}

// WriteProgress tracks batch write progress
type WriteProgress struct {
	ItemsWritten int       // Items acknowledged by the table so far
	ItemsTotal   int       // Items submitted to the writer
	Batches      int       // BatchWriteItem calls made, including resubmissions
	StartTime    time.Time // When writing started
}

// WriteOption is a functional option for configuring batch writes
type WriteOption func(*WriteOptions)

// MaxBatchSize is the DynamoDB BatchWriteItem request limit.
const MaxBatchSize = 25

// DefaultWriteOptions returns default write options
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		BatchSize:    MaxBatchSize,
		MaxRetries:   5,
		RetryBackoff: 200 * time.Millisecond,
	}
}

// WithBatchSize sets the items per batch, capped at MaxBatchSize
func WithBatchSize(size int) WriteOption {
	return func(opts *WriteOptions) {
		if size > 0 && size <= MaxBatchSize {
			opts.BatchSize = size
		}
	}
}

// WithMaxRetries sets the maximum resubmission attempts
func WithMaxRetries(retries int) WriteOption {
	return func(opts *WriteOptions) {
		opts.MaxRetries = retries
	}
}

// WithRetryBackoff sets the retry backoff duration
func WithRetryBackoff(backoff time.Duration) WriteOption {
	return func(opts *WriteOptions) {
		opts.RetryBackoff = backoff
	}
}

// WithProgressHandler sets a progress callback
func WithProgressHandler(handler func(WriteProgress)) WriteOption {
	return func(opts *WriteOptions) {
		opts.ProgressHandler = handler
	}
}
