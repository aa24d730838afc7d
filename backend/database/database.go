package database

import (
	"os"
	"path/filepath"

	"github.com/upper/db/v4"
	"github.com/upper/db/v4/adapter/sqlite"
	"vincit.fi/image-binder/common/logger"
)

type TableExist bool

const (
	TableNotExist TableExist = false
	TableExists   TableExist = true
)

type Database struct {
	session db.Session
	dbPath  string
}

func NewDatabase() *Database {
	return &Database{}
}

// NewInMemoryDatabase is used when the preference file can't be opened.
// Nothing is kept between runs.
func NewInMemoryDatabase() (*Database, error) {
	logger.Info.Printf("Initializing in-memory database")
	var settings = sqlite.ConnectionURL{
		Database: "preferences.db",
		Options: map[string]string{
			"mode":  "memory",
			"cache": "shared",
		},
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return nil, err
	}
	return &Database{session: session, dbPath: ":memory:"}, nil
}

// Open opens or creates the database file. Missing parent directories are
// created.
func (s *Database) Open(file string) error {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return err
	}

	s.dbPath = file
	logger.Info.Printf("Initializing database %s", s.dbPath)
	var settings = sqlite.ConnectionURL{
		Database: s.dbPath,
	}

	session, err := sqlite.Open(settings)
	if err != nil {
		return err
	}
	s.session = session

	var version map[string]interface{}
	if err := s.session.SQL().Select(db.Func("sqlite_version")).One(&version); err != nil {
		logger.Warn.Printf("Could not read SQLite version: %s", err)
	} else {
		logger.Debug.Printf("Database initialized. Using SQLite version %s", version["sqlite_version()"])
	}
	return nil
}

func (s *Database) Migrate() (TableExist, error) {
	logger.Info.Printf("Running migrations")
	tablesExists := s.doesTablesExists()

	if !tablesExists {
		logger.Info.Print("Initial databases don't exist. Creating...")
		err := s.session.Tx(func(session db.Session) error {
			_, err := session.SQL().Exec(`
				CREATE TABLE migration (
					id INTEGER PRIMARY KEY
				)
			`)
			return err
		})
		if err != nil {
			return TableNotExist, err
		}
	}

	if err := s.migrate(); err != nil {
		return TableExist(tablesExists), err
	}
	logger.Info.Print("All migrations done")

	if tablesExists {
		return TableExists, nil
	} else {
		return TableNotExist, nil
	}
}

func (s *Database) doesTablesExists() bool {
	rows, err := s.session.SQL().Query(`
		SELECT name FROM sqlite_master WHERE type='table' AND name='migration';
	`)

	if err != nil {
		return false
	}

	defer rows.Close()
	return rows.Next()
}

func (s *Database) Session() db.Session {
	return s.session
}

func (s *Database) migrate() error {
	return s.session.Tx(func(session db.Session) error {
		migrationStatusesById, err := s.findAlreadyRunMigrations(session)
		if err != nil {
			return err
		}
		for _, migration := range migrations {
			if err := s.runMigration(session, migration, migrationStatusesById); err != nil {
				logger.Error.Print("Failed to run migration ", err)
				return err
			}
		}
		logger.Debug.Printf("Commit migrations")
		return nil
	})
}

func (s *Database) runMigration(session db.Session, migration migration, migrationStatusesById map[MigrationId]bool) error {
	migrationId := migration.id

	if _, found := migrationStatusesById[migrationId]; found {
		logger.Debug.Printf("Migration %d is already done", migrationId)
		return nil
	}

	logger.Info.Printf("Running migration %d: %s", migrationId, migration.description)
	if _, err := session.Collection("migration").Insert(&Migration{Id: migrationId}); err != nil {
		return err
	}
	_, err := session.SQL().Exec(migration.query)
	return err
}

func (s *Database) findAlreadyRunMigrations(session db.Session) (map[MigrationId]bool, error) {
	var runMigrations []Migration
	if err := session.Collection("migration").Find().All(&runMigrations); err != nil {
		return nil, err
	}
	var migrationStatusesById = map[MigrationId]bool{}
	for _, migration := range runMigrations {
		migrationStatusesById[migration.Id] = true
	}
	return migrationStatusesById, nil
}

func (s *Database) Close() {
	logger.Info.Printf("Closing database %s", s.dbPath)
	if s.session != nil {
		if err := s.session.Close(); err != nil {
			logger.Error.Print("Error while trying to close database ", err)
		}
	} else {
		logger.Warn.Printf("No database instance to close")
	}
}
