/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup"
	"github.com/suparena/crewlookup/config"
	"github.com/suparena/crewlookup/datastore/ddb"
	"github.com/suparena/crewlookup/logging"
	"github.com/suparena/crewlookup/seed"
	"github.com/suparena/crewlookup/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	fileFlag    = flag.String("file", "", "YAML fixture file with crew records")
	tableFlag   = flag.String("table", "", "Target table (overrides TABLE_NAME)")
	retriesFlag = flag.Int("retries", 5, "Resubmissions of unprocessed items per batch")
	dryRunFlag  = flag.Bool("dry-run", false, "Validate the fixture file without writing")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := crewlookup.GetVersionInfo()
		fmt.Printf("crewseed version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *fileFlag == "" {
		fmt.Fprintln(os.Stderr, "usage: crewseed -file crew.yaml [-table NAME] [-retries N] [-dry-run]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if *tableFlag != "" {
		cfg.TableName = *tableFlag
	}
	logger := logging.NewLogger(cfg.LogLevel)

	records, err := seed.LoadFixtureFile(*fileFlag)
	if err != nil {
		logger.WithError(err).Fatal("failed to load fixtures")
	}
	logger.WithFields(logrus.Fields{"file": *fileFlag, "records": len(records)}).Info("fixtures loaded")
	if *dryRunFlag {
		return
	}

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	store, err := ddb.NewCrewDataStore(ctx, cfg.ClientConfig(), cfg.TableName)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize crew store")
	}

	if _, err := seed.NewSeeder(store, logger).Seed(ctx, records, storagemodels.WithMaxRetries(*retriesFlag)); err != nil {
		os.Exit(1)
	}
}
