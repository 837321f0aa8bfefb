/*
Package api exposes crew lookups over HTTP.

Handler.Handle is transport-neutral; HandleAPIGatewayV2 adapts it to an API
Gateway HTTP API event for Lambda, and NewRouter mounts it on a gin engine for
local use. Both serve

	GET /movies/{movieId}/crew/{role}?name=<substring>

Responses:

	200 {"data": {"crew": [...]}}
	400 {"message": "Missing required path parameters", "error": "..."}
	404 {"message": "No crew members found for role \"director\" in movie 999999"}
	500 {"message": "Failed to query crew", "error": "..."}

Each request logs one structured logrus entry with its request id, parameters,
status and latency.
*/
package api
