package application

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"

	"spellsheet/internal/ports"
)

// loadBlob decodes the value under key into dst. A missing, unreadable or
// malformed value leaves dst untouched and reports false; the cause is logged.
func loadBlob(store ports.Store, log *slog.Logger, key string, dst any) bool {
	data, ok, err := store.Get(key)
	if err != nil {
		log.Warn("failed to read stored value, using default", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn("stored value is malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

// blob is one pending keyed write
type blob struct {
	key   string
	value any
}

// saveBlobs encodes and writes every value in a single transaction
func saveBlobs(store ports.Store, blobs ...blob) error {
	encoded := make([][]byte, len(blobs))
	for i, b := range blobs {
		data, err := json.Marshal(b.value)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", b.key, err)
		}
		encoded[i] = data
	}

	if len(blobs) == 1 {
		if err := store.Set(blobs[0].key, encoded[0]); err != nil {
			return &PersistError{Key: blobs[0].key, Err: err}
		}
		return nil
	}

	tx, err := store.BeginTx()
	if err != nil {
		return &PersistError{Key: blobs[0].key, Err: err}
	}
	for i, b := range blobs {
		if err := tx.Set(b.key, encoded[i]); err != nil {
			_ = tx.Rollback()
			return &PersistError{Key: b.key, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &PersistError{Key: blobs[0].key, Err: err}
	}
	return nil
}
