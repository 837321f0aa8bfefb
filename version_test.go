/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package crewlookup

import "testing"

func TestGetVersionInfo(t *testing.T) {
	old := GitCommit
	GitCommit = "abc123"
	defer func() { GitCommit = old }()

	info := GetVersionInfo()
	if info.Version != Version {
		t.Errorf("Expected version %q, got %q", Version, info.Version)
	}
	if info.GitCommit != "abc123" {
		t.Errorf("Expected build-flag commit to be reported, got %q", info.GitCommit)
	}
}
