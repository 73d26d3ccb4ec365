package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the transcript storage format version.
// Increment this when making breaking changes to the stored JSON.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// SchemaVersion returns the stored schema version, 0 for a fresh database.
func (s *BoltStore) SchemaVersion() (int, error) {
	var version int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &version); err != nil {
			version = 0
		}
		return nil
	})
	return version, err
}

// migrate stamps fresh databases and resets transcripts written by an
// incompatible version.
func (s *BoltStore) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if version == CurrentSchemaVersion {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if version != 0 {
			s.logger.Warn("resetting chat history after schema change", "from", version, "to", CurrentSchemaVersion)
			if err := tx.DeleteBucket(bucketTranscripts); err != nil {
				return err
			}
			if _, err := tx.CreateBucket(bucketTranscripts); err != nil {
				return err
			}
		}
		data, err := json.Marshal(CurrentSchemaVersion)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}
