/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"chatty", logrus.InfoLevel},
	}
	for _, tt := range tests {
		if got := NewLogger(tt.in).GetLevel(); got != tt.want {
			t.Errorf("NewLogger(%q) level = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info")
	logger.WithField("movieId", 603).Info("crew lookup")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "crew lookup" || entry["movieId"] != float64(603) {
		t.Fatalf("Unexpected entry: %v", entry)
	}
}
