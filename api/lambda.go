/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package api

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup/lookup"
)

// HandleAPIGatewayV2 serves an API Gateway HTTP API event. It never returns a Go
// error: failures are rendered as JSON responses.
func (h *Handler) HandleAPIGatewayV2(ctx context.Context, event events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	requestID := lambdaRequestID(ctx, event.RequestContext.RequestID)

	if h.log.IsLevelEnabled(logrus.DebugLevel) {
		if raw, err := json.Marshal(event); err == nil {
			h.log.WithField("request_id", requestID).Debug("Event: " + string(raw))
		}
	}

	resp := h.Handle(ctx, requestID, lookup.Params{
		MovieID: event.PathParameters["movieId"],
		Role:    event.PathParameters["role"],
		Name:    event.QueryStringParameters["name"],
	})

	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    map[string]string{"content-type": ContentTypeJSON},
		Body:       string(resp.Body),
	}, nil
}

// lambdaRequestID prefers the invocation's AWS request id, then the API Gateway one.
func lambdaRequestID(ctx context.Context, gatewayID string) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if gatewayID != "" {
		return gatewayID
	}
	return uuid.NewString()
}
