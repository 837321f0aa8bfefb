/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package lookup

import (
	"context"
	sterrors "errors"
	"testing"

	"github.com/suparena/crewlookup/datastore/mock"
	"github.com/suparena/crewlookup/errors"
	"github.com/suparena/crewlookup/storagemodels"
)

func member(movieID int, role, name string) storagemodels.CrewRecord {
	return storagemodels.CrewRecord{MovieID: movieID, CrewRole: role, Name: name, HasName: true}
}

func matrixStore() *mock.CrewStore {
	return mock.New().Add(
		member(603, "director", "Lana Wachowski"),
		member(603, "director", "Lilly Wachowski"),
		member(603, "editor", "Zach Staenberg"),
	)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		want    Query
		field   string
		wantErr bool
	}{
		{name: "valid", params: Params{MovieID: "603", Role: "director"}, want: Query{MovieID: 603, Role: "director"}},
		{name: "with name", params: Params{MovieID: "603", Role: "director", Name: "lana"}, want: Query{MovieID: 603, Role: "director", NameFilter: "lana"}},
		{name: "missing movie", params: Params{Role: "director"}, field: "movieId", wantErr: true},
		{name: "missing role", params: Params{MovieID: "603"}, field: "role", wantErr: true},
		{name: "missing both", params: Params{}, wantErr: true},
		{name: "non-numeric movie", params: Params{MovieID: "abc", Role: "director"}, field: "movieId", wantErr: true},
		{name: "trailing garbage", params: Params{MovieID: "603abc", Role: "director"}, field: "movieId", wantErr: true},
		{name: "negative movie", params: Params{MovieID: "-1", Role: "director"}, field: "movieId", wantErr: true},
		{name: "zero movie", params: Params{MovieID: "0", Role: "director"}, field: "movieId", wantErr: true},
		{name: "overflow", params: Params{MovieID: "99999999999999999999999", Role: "director"}, field: "movieId", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuery(tt.params)
			if tt.wantErr {
				if !errors.IsValidationError(err) {
					t.Fatalf("Expected validation error, got %v", err)
				}
				var ve *errors.ValidationError
				if tt.field != "" && sterrors.As(err, &ve) && ve.Field != tt.field {
					t.Fatalf("Expected field %q, got %q", tt.field, ve.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuery failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLookupCrew(t *testing.T) {
	svc := NewService(matrixStore())
	ctx := context.Background()

	t.Run("no filter returns every record", func(t *testing.T) {
		res, err := svc.LookupCrew(ctx, Query{MovieID: 603, Role: "director"})
		if err != nil {
			t.Fatalf("LookupCrew failed: %v", err)
		}
		if len(res.Crew) != 2 || res.Matched != 2 {
			t.Fatalf("Expected 2 directors, got %+v", res)
		}
	})

	t.Run("filter narrows", func(t *testing.T) {
		res, err := svc.LookupCrew(ctx, Query{MovieID: 603, Role: "director", NameFilter: "lana"})
		if err != nil {
			t.Fatalf("LookupCrew failed: %v", err)
		}
		if len(res.Crew) != 1 || res.Crew[0].Name != "Lana Wachowski" {
			t.Fatalf("Expected Lana Wachowski only, got %+v", res.Crew)
		}
		if res.Matched != 2 {
			t.Fatalf("Matched should count records before filtering, got %d", res.Matched)
		}
	})

	t.Run("filter matching nothing is still success", func(t *testing.T) {
		res, err := svc.LookupCrew(ctx, Query{MovieID: 603, Role: "director", NameFilter: "nobody"})
		if err != nil {
			t.Fatalf("LookupCrew failed: %v", err)
		}
		if res.Crew == nil || len(res.Crew) != 0 {
			t.Fatalf("Expected empty non-nil crew, got %#v", res.Crew)
		}
	})

	t.Run("empty partition is not found regardless of filter", func(t *testing.T) {
		for _, filter := range []string{"", "lana"} {
			_, err := svc.LookupCrew(ctx, Query{MovieID: 999999, Role: "director", NameFilter: filter})
			if !errors.IsNotFound(err) {
				t.Fatalf("Expected not found with filter %q, got %v", filter, err)
			}
			if err.Error() != `No crew members found for role "director" in movie 999999` {
				t.Fatalf("Unexpected message %q", err.Error())
			}
		}
	})
}

func TestLookupCrewBackendFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("backend error passes through", func(t *testing.T) {
		backendErr := errors.NewBackendError("Query", context.DeadlineExceeded)
		svc := NewService(mock.New().WithQueryError(backendErr))
		_, err := svc.LookupCrew(ctx, Query{MovieID: 603, Role: "director"})
		if err != backendErr {
			t.Fatalf("Expected the store's backend error, got %v", err)
		}
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		svc := NewService(mock.New().WithQueryError(sterrors.New("connection reset")))
		_, err := svc.LookupCrew(ctx, Query{MovieID: 603, Role: "director"})
		if !errors.IsBackendError(err) {
			t.Fatalf("Expected backend error, got %v", err)
		}
	})
}

func TestFilterByName(t *testing.T) {
	crew := []storagemodels.CrewRecord{
		member(1, "director", "Jane Doe"),
		{MovieID: 1, CrewRole: "director"},
	}

	for _, filter := range []string{"doe", "JANE", "ne d", "Jane Doe"} {
		got := FilterByName(crew, filter)
		if len(got) != 1 || got[0].Name != "Jane Doe" {
			t.Errorf("Filter %q should match Jane Doe only, got %+v", filter, got)
		}
	}

	if got := FilterByName(crew, "john"); len(got) != 0 {
		t.Errorf("Filter john should match nothing, got %+v", got)
	}
	if got := FilterByName(crew, ""); len(got) != 2 {
		t.Errorf("Empty filter should keep every record, got %d", len(got))
	}
}
