/*
Package ddb provides a DynamoDB implementation of the CrewStore interface.

The table uses movieId (number) as partition key and crewRole (string) as sort key.
A lookup is a single equality query on both:

	KeyConditionExpression: "movieId = :m AND crewRole = :r"

Query follows LastEvaluatedKey with dynamodb.NewQueryPaginator so a partition
larger than one page comes back whole. Items are decoded into generic maps first,
so attributes other than movieId, crewRole and name are carried through untouched.

PutBatch groups records into BatchWriteItem calls of up to 25 and resubmits
UnprocessedItems with linear backoff:

	written, err := store.PutBatch(ctx, records,
	    storagemodels.WithMaxRetries(5),
	    storagemodels.WithProgressHandler(func(p storagemodels.WriteProgress) {
	        log.Printf("wrote %d/%d", p.ItemsWritten, p.ItemsTotal)
	    }),
	)

Failures are returned as errors.BackendError, classified from the smithy error code.
*/
package ddb
