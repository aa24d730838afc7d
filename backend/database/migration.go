package database

type migration struct {
	id          MigrationId
	description string
	query       string
}

var migrations = []migration{
	{
		id:          0,
		description: "Preferences",
		query: `
			CREATE TABLE preference (
			    key TEXT PRIMARY KEY,
			    value TEXT
			);
		`,
	},
}
