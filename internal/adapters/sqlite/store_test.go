package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "spellsheet.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := openTestStore(t)

	value, ok, err := s.Get("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestStore_SetGetOverwrite(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Set("k", []byte(`[1]`)))
	require.NoError(t, s.Set("k", []byte(`[1,2]`)))

	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(value))
}

func TestStore_SurvivesReopen(t *testing.T) {
	s, path := openTestStore(t)
	require.NoError(t, s.Set("k", []byte(`{"a":1}`)))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(value))

	version, err := reopened.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, schemaVersion, version)
}

func TestOpen_RejectsUnknownSchemaVersion(t *testing.T) {
	s, path := openTestStore(t)
	_, err := s.db.Exec(`UPDATE meta SET value = '99' WHERE key = 'schema_version'`)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = Open(path)
	require.ErrorIs(t, err, ErrSchemaVersion)
	assert.Contains(t, err.Error(), "database has 99")
}

func TestStore_TxCommit(t *testing.T) {
	s, _ := openTestStore(t)

	tx, err := s.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Set("a", []byte("1")))
	require.NoError(t, tx.Set("b", []byte("2")))
	require.NoError(t, tx.Commit())

	for key, want := range map[string]string{"a": "1", "b": "2"} {
		value, ok, err := s.Get(key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, string(value))
	}
}

func TestStore_TxRollback(t *testing.T) {
	s, _ := openTestStore(t)
	require.NoError(t, s.Set("a", []byte("before")))

	tx, err := s.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Set("a", []byte("after")))
	require.NoError(t, tx.Set("b", []byte("new")))
	require.NoError(t, tx.Rollback())

	value, _, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "before", string(value))

	_, ok, err := s.Get("b")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("k", []byte("v")))
	value, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(value))
}
