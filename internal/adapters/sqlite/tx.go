package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"spellsheet/internal/ports"
)

// storeTx implements ports.StoreTx
type storeTx struct {
	tx *sql.Tx
}

// Ensure storeTx implements StoreTx
var _ ports.StoreTx = (*storeTx)(nil)

// Set stages a write inside the transaction
func (t *storeTx) Set(key string, value []byte) error {
	if _, err := t.tx.Exec(upsertSQL, key, value, time.Now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Commit commits the transaction
func (t *storeTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *storeTx) Rollback() error {
	return t.tx.Rollback()
}
