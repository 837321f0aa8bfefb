/*
Package crewlookup serves a movie crew directory out of a single DynamoDB table.

The table is keyed by movieId (partition) and crewRole (sort). One request shape
is supported: every crew member holding a role on a movie, optionally narrowed
by a case-insensitive substring of their name.

	GET /movies/603/crew/director?name=lana

	200 {"data": {"crew": [{"movieId": 603, "crewRole": "director", "name": "Lana Wachowski"}]}}

Packages:
  - lookup: parameter validation, the partition query and the name filter
  - api: status/envelope mapping plus Lambda (API Gateway HTTP API) and gin adapters
  - datastore, datastore/ddb, datastore/mock: the CrewStore interface and its implementations
  - storagemodels: CrewRecord and query/write parameters
  - errors: validation, not-found and backend error types
  - config, logging: viper/godotenv configuration and the logrus logger
  - seed: YAML fixture loading for populating a table

Entrypoints live under cmd/: crewlookup (Lambda), crewserver (local HTTP) and
crewseed (fixture loader).
*/
package crewlookup
