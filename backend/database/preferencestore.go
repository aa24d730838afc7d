package database

import (
	"github.com/upper/db/v4"
	"vincit.fi/image-binder/common/logger"
)

const ThumbnailSizeKey PreferenceKey = "thumbnail_size"

type PreferenceStore struct {
	database   *Database
	collection db.Collection
}

func NewPreferenceStore(database *Database) *PreferenceStore {
	return &PreferenceStore{
		database: database,
	}
}

func (s *PreferenceStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("preference")
	}
	return s.collection
}

// Get returns db.ErrNoMoreRows when the preference has never been set.
func (s *PreferenceStore) Get(key PreferenceKey) (string, error) {
	var preference Preference
	if err := s.getCollection().Find(db.Cond{"key": key}).One(&preference); err != nil {
		return "", err
	}
	return preference.Value, nil
}

func (s *PreferenceStore) Set(key PreferenceKey, value string) error {
	logger.Debug.Printf("Updating preference %s to %s", key, value)
	preference := &Preference{
		Key:   key,
		Value: value,
	}

	result := s.getCollection().Find(db.Cond{"key": key})
	if exists, err := result.Exists(); err != nil {
		return err
	} else if exists {
		return result.Update(preference)
	}
	_, err := s.getCollection().Insert(preference)
	return err
}
