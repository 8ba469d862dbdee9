package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/btree"
	"go.etcd.io/bbolt"

	"github.com/cloudtally/cloudtally/inventory"
)

// Bucket names in bbolt
var (
	bucketRuns    = []byte("runs")
	bucketRecords = []byte("records")
	bucketMeta    = []byte("meta")
)

// Snapshot is the persisted outcome of one inventory run. Record
// payloads live in a separate bucket so history listings stay cheap.
type Snapshot struct {
	Run       int64          `json:"run"`
	Account   string         `json:"account"`
	Mode      string         `json:"mode"`
	Timestamp time.Time      `json:"timestamp"`
	Total     int            `json:"total"`
	HadErrors bool           `json:"had_errors"`
	ByType    map[string]int `json:"by_type,omitempty"`
}

// Store keeps per-run inventory snapshots on disk with an in-memory
// index ordered by run number.
type Store struct {
	mu sync.RWMutex

	index      *btree.BTreeG[*Snapshot]
	db         *bbolt.DB
	currentRun int64
}

// Open opens (or creates) the snapshot database under dir.
func Open(dir string) (*Store, error) {
	dbPath := filepath.Join(dir, "cloudtally.db")

	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range [][]byte{bucketRuns, bucketRecords, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{
		index: btree.NewG[*Snapshot](32, func(a, b *Snapshot) bool {
			return a.Run < b.Run
		}),
		db: db,
	}

	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the store
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun persists one run's records and summary, returning the run
// number assigned.
func (s *Store) SaveRun(account, mode string, records []inventory.Record, hadErrors bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentRun++
	run := s.currentRun

	snapshot := &Snapshot{
		Run:       run,
		Account:   account,
		Mode:      mode,
		Timestamp: time.Now().UTC(),
		Total:     len(records),
		HadErrors: hadErrors,
		ByType:    countByType(records),
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		meta, err := json.Marshal(snapshot)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketRuns).Put(runKey(run), meta); err != nil {
			return err
		}

		payload, err := json.Marshal(records)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketRecords).Put(runKey(run), payload); err != nil {
			return err
		}

		return tx.Bucket(bucketMeta).Put([]byte("current_run"), []byte(fmt.Sprintf("%d", run)))
	})
	if err != nil {
		s.currentRun--
		return 0, err
	}

	s.index.ReplaceOrInsert(snapshot)
	return run, nil
}

// History returns the most recent snapshots, newest first, up to limit.
// limit <= 0 means all.
func (s *Store) History(limit int) []*Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Snapshot
	s.index.Descend(func(snap *Snapshot) bool {
		out = append(out, snap)
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Records loads the full record set saved for a run.
func (s *Store) Records(run int64) ([]inventory.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []inventory.Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketRecords).Get(runKey(run))
		if data == nil {
			return fmt.Errorf("run %d not found", run)
		}
		return json.Unmarshal(data, &records)
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CurrentRun returns the last assigned run number.
func (s *Store) CurrentRun() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentRun
}

// Compact drops runs older than the most recent keep, records and
// summaries both.
func (s *Store) Compact(keep int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.currentRun - keep
	if cutoff <= 0 {
		return nil
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		for run := int64(1); run <= cutoff; run++ {
			if err := tx.Bucket(bucketRuns).Delete(runKey(run)); err != nil {
				return err
			}
			if err := tx.Bucket(bucketRecords).Delete(runKey(run)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	var stale []*Snapshot
	s.index.Ascend(func(snap *Snapshot) bool {
		if snap.Run <= cutoff {
			stale = append(stale, snap)
			return true
		}
		return false
	})
	for _, snap := range stale {
		s.index.Delete(snap)
	}
	return nil
}

// load restores the run counter and rebuilds the index from disk.
func (s *Store) load() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		if data := tx.Bucket(bucketMeta).Get([]byte("current_run")); data != nil {
			fmt.Sscanf(string(data), "%d", &s.currentRun)
		}

		return tx.Bucket(bucketRuns).ForEach(func(_, v []byte) error {
			var snap Snapshot
			if err := json.Unmarshal(v, &snap); err != nil {
				return err
			}
			s.index.ReplaceOrInsert(&snap)
			return nil
		})
	})
}

func runKey(run int64) []byte {
	return []byte(fmt.Sprintf("%016d", run))
}

func countByType(records []inventory.Record) map[string]int {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Type]++
	}
	return counts
}
