package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStores(t *testing.T) map[string]Store {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return map[string]Store{"sqlite": db, "memory": NewMemory()}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			type record struct {
				Name  string `json:"name"`
				Count int    `json:"count"`
			}

			require.NoError(t, st.Set("k", record{Name: "a", Count: 2}))

			var got record
			found, err := st.Get("k", &got)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, record{Name: "a", Count: 2}, got)

			// overwrite
			require.NoError(t, st.Set("k", record{Name: "b", Count: 3}))
			found, err = st.Get("k", &got)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "b", got.Name)
		})
	}
}

func TestStoreMissingKey(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			var got string
			found, err := st.Get("absent", &got)
			require.NoError(t, err)
			assert.False(t, found)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, st := range openStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Set("k", "v"))
			require.NoError(t, st.Delete("k"))

			var got string
			found, err := st.Get("k", &got)
			require.NoError(t, err)
			assert.False(t, found)

			// deleting again is not an error
			assert.NoError(t, st.Delete("k"))
		})
	}
}
