/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup/api"
	"github.com/suparena/crewlookup/config"
	"github.com/suparena/crewlookup/datastore/ddb"
	"github.com/suparena/crewlookup/logging"
	"github.com/suparena/crewlookup/lookup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger := logging.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := ddb.NewCrewDataStore(ctx, cfg.ClientConfig(), cfg.TableName)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize crew store")
	}

	router := api.NewRouter(api.NewHandler(lookup.NewService(store), logger))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{"port": cfg.Port, "table": cfg.TableName}).Info("crew server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown failed")
	}
}
