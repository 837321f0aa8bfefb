/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package seed

import (
	"context"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/sirupsen/logrus"
	"github.com/suparena/crewlookup/datastore"
	"github.com/suparena/crewlookup/storagemodels"
)

// AttrSeededAt is stamped on every seeded record that does not already carry it.
const AttrSeededAt = "seededAt"

// Seeder writes fixture records into a CrewStore.
type Seeder struct {
	store datastore.CrewStore
	log   logrus.FieldLogger
	now   func() time.Time
}

// NewSeeder creates a Seeder.
func NewSeeder(store datastore.CrewStore, log logrus.FieldLogger) *Seeder {
	return &Seeder{store: store, log: log, now: time.Now}
}

// Seed stamps and writes records, returning how many the store acknowledged.
func (s *Seeder) Seed(ctx context.Context, records []storagemodels.CrewRecord, opts ...storagemodels.WriteOption) (int, error) {
	stamp := strfmt.DateTime(s.now().UTC()).String()
	stamped := make([]storagemodels.CrewRecord, len(records))
	for i, rec := range records {
		attrs := make(map[string]interface{}, len(rec.Attributes)+1)
		for k, v := range rec.Attributes {
			attrs[k] = v
		}
		if _, ok := attrs[AttrSeededAt]; !ok {
			attrs[AttrSeededAt] = stamp
		}
		rec.Attributes = attrs
		stamped[i] = rec
	}

	opts = append(opts, storagemodels.WithProgressHandler(func(p storagemodels.WriteProgress) {
		s.log.WithFields(logrus.Fields{
			"written": p.ItemsWritten,
			"total":   p.ItemsTotal,
			"batches": p.Batches,
		}).Info("seed progress")
	}))

	written, err := s.store.PutBatch(ctx, stamped, opts...)
	if err != nil {
		s.log.WithError(err).WithField("written", written).Error("seeding failed")
		return written, err
	}
	s.log.WithField("written", written).Info("seeding complete")
	return written, nil
}
