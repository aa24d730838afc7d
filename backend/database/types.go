package database

type MigrationId int64

type Migration struct {
	Id MigrationId `db:"id"`
}

type PreferenceKey string

type Preference struct {
	Key   PreferenceKey `db:"key"`
	Value string        `db:"value"`
}
