/*
Package lookup answers "who held role R on movie M" against a CrewStore.

A lookup runs in four steps:

	q, err := lookup.ParseQuery(lookup.Params{MovieID: "603", Role: "director", Name: "lana"})
	// missing or non-numeric movieId, or missing role -> errors.ErrInvalidInput

	res, err := lookup.NewService(store).LookupCrew(ctx, q)
	// empty partition -> errors.ErrNotFound
	// storage failure -> errors.ErrBackend
	// otherwise res.Crew holds the records whose name contains "lana", ignoring case

The name filter is applied after the not-found check, so a filter that matches
nobody produces an empty but successful result.
*/
package lookup
