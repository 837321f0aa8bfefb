/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
	"gopkg.in/yaml.v3"
)

// fixtureFile is the on-disk layout of a crew fixture:
//
//	crew:
//	  - movieId: 603
//	    crewRole: director
//	    name: Lana Wachowski
type fixtureFile struct {
	Crew []map[string]interface{} `yaml:"crew"`
}

// LoadFixtureFile reads crew records from a YAML file.
func LoadFixtureFile(path string) ([]storagemodels.CrewRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()
	return LoadFixtures(f)
}

// LoadFixtures decodes crew records from YAML. Every record needs a positive
// movieId and a non-empty crewRole; other keys become passthrough attributes.
func LoadFixtures(r io.Reader) ([]storagemodels.CrewRecord, error) {
	var file fixtureFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode fixtures: %w", err)
	}

	records := make([]storagemodels.CrewRecord, 0, len(file.Crew))
	for i, raw := range file.Crew {
		rec, err := storagemodels.NewCrewRecordFromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("fixture %d: %w", i, err)
		}
		if rec.MovieID <= 0 {
			return nil, fmt.Errorf("fixture %d: %w", i, errors.NewValidationError(storagemodels.AttrMovieID, "must be a positive integer"))
		}
		if rec.CrewRole == "" {
			return nil, fmt.Errorf("fixture %d: %w", i, errors.NewValidationError(storagemodels.AttrCrewRole, "is required"))
		}
		records = append(records, rec)
	}
	return records, nil
}
