/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeClient replays canned Query pages and BatchWriteItem outputs and records every input.
type fakeClient struct {
	queryPages  []*sdk.QueryOutput
	queryErr    error
	queryInputs []*sdk.QueryInput

	writeOutputs []*sdk.BatchWriteItemOutput
	writeErrs    []error
	writeInputs  []*sdk.BatchWriteItemInput
}

func (f *fakeClient) Query(_ context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	// copy the input; the paginator mutates ExclusiveStartKey between pages
	cp := *in
	f.queryInputs = append(f.queryInputs, &cp)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	i := len(f.queryInputs) - 1
	if i >= len(f.queryPages) {
		return &sdk.QueryOutput{}, nil
	}
	return f.queryPages[i], nil
}

func (f *fakeClient) BatchWriteItem(_ context.Context, in *sdk.BatchWriteItemInput, _ ...func(*sdk.Options)) (*sdk.BatchWriteItemOutput, error) {
	f.writeInputs = append(f.writeInputs, in)
	i := len(f.writeInputs) - 1
	if i < len(f.writeErrs) && f.writeErrs[i] != nil {
		return nil, f.writeErrs[i]
	}
	if i < len(f.writeOutputs) && f.writeOutputs[i] != nil {
		return f.writeOutputs[i], nil
	}
	return &sdk.BatchWriteItemOutput{}, nil
}

var _ DynamoClient = (*fakeClient)(nil)
