/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import "testing"

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TABLE_NAME", "MovieCrew")
	t.Setenv("REGION", "eu-west-1")
	t.Setenv("AWS_REGION", "us-east-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TableName != "MovieCrew" {
		t.Errorf("Expected table MovieCrew, got %q", cfg.TableName)
	}
	if cfg.Region != "eu-west-1" {
		t.Errorf("REGION should win over AWS_REGION, got %q", cfg.Region)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %q", cfg.LogLevel)
	}
	if cc := cfg.ClientConfig(); cc.Endpoint != "http://localhost:8000" || cc.Region != "eu-west-1" {
		t.Errorf("Unexpected client config: %+v", cc)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TABLE_NAME", "")
	t.Setenv("REGION", "")
	t.Setenv("AWS_REGION", "ap-southeast-2")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Region != "ap-southeast-2" {
		t.Errorf("Expected AWS_REGION fallback, got %q", cfg.Region)
	}
	if cfg.LogLevel != "info" || cfg.Port != "8080" {
		t.Errorf("Expected defaults info/8080, got %q/%q", cfg.LogLevel, cfg.Port)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject a missing table name")
	}
}
