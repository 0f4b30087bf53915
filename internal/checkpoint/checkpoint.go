// Package checkpoint persists which taxonomy labels a bulk "generate"
// run has already emitted, so a resumed run can skip labels it already
// wrote samples for. Adapted from the teacher's PDF-ingestion
// checkpoint store: same bbolt-backed "is this key done" / "mark this
// key done" shape, applied to taxonomy labels instead of filenames.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// LabelMetadata records when and how many samples were written for a
// label during a generate run.
type LabelMetadata struct {
	Label       string    `json:"label"`
	SampleCount int       `json:"sample_count"`
	WrittenAt   time.Time `json:"written_at"`
}

const bucketLabels = "GeneratedLabels"

// Store is a resumable record of which labels a generate run has
// already produced samples for.
type Store struct {
	db *bbolt.DB
}

// Open opens (creating if needed) the checkpoint database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open generate checkpoint database: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLabels))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkpoint bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// IsDone reports whether label already has recorded metadata.
func (s *Store) IsDone(label string) bool {
	var exists bool
	s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketLabels))
		exists = b.Get([]byte(label)) != nil
		return nil
	})
	return exists
}

// MarkDone records that label has had sampleCount samples written.
func (s *Store) MarkDone(meta LabelMetadata) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketLabels))
		data, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal checkpoint metadata: %w", err)
		}
		return b.Put([]byte(meta.Label), data)
	})
}

// Done returns metadata for every label marked done so far.
func (s *Store) Done() ([]LabelMetadata, error) {
	var out []LabelMetadata
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketLabels))
		return b.ForEach(func(k, v []byte) error {
			var meta LabelMetadata
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			out = append(out, meta)
			return nil
		})
	})
	return out, err
}
