/*
Package storagemodels defines the data structures shared by the crew datastore
implementations.

Key Types:

CrewRecord:
One crew assignment. movieId and crewRole form the composite key; name is the
field lookups filter on. Every other stored attribute is kept in Attributes and
written back out unchanged:

	rec, err := storagemodels.NewCrewRecordFromMap(map[string]interface{}{
	    "movieId":  603,
	    "crewRole": "director",
	    "name":     "Lana Wachowski",
	    "department": "Directing",
	})

QueryParams:
Parameters for querying the crew table:

	params := storagemodels.NewCrewQueryParams(603, "director")
	// KeyConditionExpression: "movieId = :m AND crewRole = :r"

WriteOptions:
Configuration for batch writes:

	opts := []WriteOption{
	    WithBatchSize(25),
	    WithMaxRetries(5),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
