/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package lookup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/suparena/crewlookup/datastore"
	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
)

// Params are the raw request values, before validation.
type Params struct {
	MovieID string `validate:"required,number"`
	Role    string `validate:"required"`
	Name    string
}

// Query is a validated crew lookup.
type Query struct {
	MovieID int    `validate:"gt=0"`
	Role    string `validate:"required"`
	// NameFilter is matched case-insensitively as a substring; empty means no filtering.
	NameFilter string
}

// Result is the crew returned for a query, after filtering.
type Result struct {
	Crew []storagemodels.CrewRecord
	// Matched is the record count before the name filter was applied.
	Matched int
}

var validate = validator.New()

// ParseQuery validates raw parameters. Any failure is a MissingParameters client error.
func ParseQuery(p Params) (Query, error) {
	if err := validate.Struct(p); err != nil {
		return Query{}, validationError(err)
	}

	movieID, err := strconv.Atoi(p.MovieID)
	if err != nil {
		return Query{}, errors.NewValidationError("movieId", "must be an integer")
	}

	q := Query{MovieID: movieID, Role: p.Role, NameFilter: p.Name}
	if err := validate.Struct(q); err != nil {
		return Query{}, validationError(err)
	}
	return q, nil
}

func validationError(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewValidationError(fieldName(fe.Field()), describe(fe))
	}
	return errors.NewValidationError("", err.Error())
}

func fieldName(field string) string {
	switch field {
	case "MovieID":
		return "movieId"
	case "Role":
		return "role"
	default:
		return strings.ToLower(field)
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "number":
		return "must be an integer"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// Service answers crew lookups against a CrewStore.
type Service struct {
	store datastore.CrewStore
}

// NewService creates a lookup service over store.
func NewService(store datastore.CrewStore) *Service {
	return &Service{store: store}
}

// LookupCrew queries the (movie, role) partition, fails with NotFound when it is
// empty, and then applies the name filter. A filter that removes every record
// still yields an empty, successful result.
func (s *Service) LookupCrew(ctx context.Context, q Query) (*Result, error) {
	crew, err := s.store.QueryCrew(ctx, q.MovieID, q.Role)
	if err != nil {
		if errors.IsBackendError(err) {
			return nil, err
		}
		return nil, errors.NewBackendError("Query", err)
	}
	if len(crew) == 0 {
		return nil, errors.NewNotFoundError(q.MovieID, q.Role)
	}

	return &Result{
		Crew:    FilterByName(crew, q.NameFilter),
		Matched: len(crew),
	}, nil
}

// FilterByName keeps records whose name contains filter, ignoring case.
// Records without a name never match a non-empty filter.
func FilterByName(crew []storagemodels.CrewRecord, filter string) []storagemodels.CrewRecord {
	if filter == "" {
		return crew
	}
	needle := strings.ToLower(filter)
	filtered := make([]storagemodels.CrewRecord, 0, len(crew))
	for _, member := range crew {
		if member.HasName && strings.Contains(strings.ToLower(member.Name), needle) {
			filtered = append(filtered, member)
		}
	}
	return filtered
}
