/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package logging configures the structured logrus logger shared by every entrypoint.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a JSON logger writing to stdout at the named level.
// An unknown level falls back to info.
func NewLogger(level string) *logrus.Logger {
	return NewLoggerTo(os.Stdout, level)
}

// NewLoggerTo is NewLogger with an explicit writer.
func NewLoggerTo(w io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
