/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup/api"
	"github.com/suparena/crewlookup/config"
	"github.com/suparena/crewlookup/datastore/ddb"
	"github.com/suparena/crewlookup/logging"
	"github.com/suparena/crewlookup/lookup"
)

var handler *api.Handler

// init runs once per cold start; the DynamoDB client is reused by every invocation.
func init() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logger := logging.NewLogger(cfg.LogLevel)

	store, err := ddb.NewCrewDataStore(context.Background(), cfg.ClientConfig(), cfg.TableName)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize crew store")
	}
	logger.WithFields(logrus.Fields{
		"table":  cfg.TableName,
		"region": cfg.Region,
	}).Info("crew store initialized")

	handler = api.NewHandler(lookup.NewService(store), logger)
}

func main() {
	awslambda.Start(handler.HandleAPIGatewayV2)
}
