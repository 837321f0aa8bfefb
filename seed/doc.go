/*
Package seed loads crew fixtures from YAML and writes them to a CrewStore.

	records, err := seed.LoadFixtureFile("testdata/crew.yaml")
	written, err := seed.NewSeeder(store, logger).Seed(ctx, records)

Each written record gets a seededAt timestamp attribute unless the fixture sets one.
*/
package seed
