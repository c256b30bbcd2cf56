package ledger_test

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/factory/pkg/factory/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory creates a store instance for testing.
type storeFactory func(t *testing.T) ledger.Store

func newSQLite(t *testing.T) ledger.Store {
	s, err := ledger.NewSQLiteStore(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	return s
}

func newMemory(t *testing.T) ledger.Store {
	return ledger.NewMemoryStore()
}

func TestStores(t *testing.T) {
	storeContractTest(t, "memory", newMemory)
	storeContractTest(t, "sqlite", newSQLite)
}

// storeContractTest runs contract tests against any Store implementation.
func storeContractTest(t *testing.T, name string, factory storeFactory) {
	t.Run(name+"/Append_and_List", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		rec := ledger.NewRecord("shapes", "Circle", 1)
		rec.Outcome = "produced"
		rec.Duration = 1500 * time.Microsecond
		require.NoError(t, store.Append(rec))

		got, err := store.List("shapes")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, rec.ID, got[0].ID)
		assert.Equal(t, "Circle", got[0].Product)
		assert.Equal(t, 1, got[0].Args)
		assert.Equal(t, "produced", got[0].Outcome)
		assert.Equal(t, rec.Duration, got[0].Duration)
		assert.WithinDuration(t, rec.Timestamp, got[0].Timestamp, time.Millisecond)
	})

	t.Run(name+"/List_PreservesOrder_and_Filters", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		for _, p := range []string{"Square", "Circle", "Triangle"} {
			rec := ledger.NewRecord("shapes", p, 0)
			rec.Outcome = "produced"
			require.NoError(t, store.Append(rec))
		}
		other := ledger.NewRecord("fitters", "Gauss", 2)
		other.Outcome = "not_registered"
		other.Error = "no product found"
		require.NoError(t, store.Append(other))

		got, err := store.List("shapes")
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "Square", got[0].Product)
		assert.Equal(t, "Circle", got[1].Product)
		assert.Equal(t, "Triangle", got[2].Product)

		all, err := store.List("")
		require.NoError(t, err)
		assert.Len(t, all, 4)
		assert.Equal(t, "no product found", all[3].Error)

		n, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run(name+"/List_Empty", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		got, err := store.List("nobody")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run(name+"/Append_MissingID", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		err := store.Append(ledger.Record{Factory: "shapes"})
		assert.ErrorIs(t, err, ledger.ErrMissingID)
	})

	t.Run(name+"/Closed", func(t *testing.T) {
		store := factory(t)
		require.NoError(t, store.Close())
		require.NoError(t, store.Close())

		assert.ErrorIs(t, store.Append(ledger.NewRecord("a", "b", 0)), ledger.ErrStoreClosed)
		_, err := store.List("")
		assert.ErrorIs(t, err, ledger.ErrStoreClosed)
		_, err = store.Count()
		assert.ErrorIs(t, err, ledger.ErrStoreClosed)
	})

	t.Run(name+"/Concurrent_Append", func(t *testing.T) {
		store := factory(t)
		defer store.Close()

		const n = 40
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, store.Append(ledger.NewRecord("shapes", "Circle", 1)))
			}()
		}
		wg.Wait()

		count, err := store.Count()
		require.NoError(t, err)
		assert.Equal(t, n, count)
	})
}

func TestNewRecord(t *testing.T) {
	rec := ledger.NewRecord("shapes", "Circle", 3)

	_, err := uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, "shapes", rec.Factory)
	assert.Equal(t, "Circle", rec.Product)
	assert.Equal(t, 3, rec.Args)
	assert.Equal(t, time.UTC, rec.Timestamp.Location())
	assert.NotEqual(t, rec.ID, ledger.NewRecord("shapes", "Circle", 3).ID)
}

func TestSQLiteStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s1, err := ledger.NewSQLiteStore(path)
	require.NoError(t, err)
	rec := ledger.NewRecord("shapes", "Square", 1)
	rec.Outcome = "produced"
	require.NoError(t, s1.Append(rec))
	require.NoError(t, s1.Close())

	s2, err := ledger.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.List("shapes")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
}

func TestSQLiteStore_CorruptTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	s1, err := ledger.NewSQLiteStore(path)
	require.NoError(t, err)
	rec := ledger.NewRecord("shapes", "Square", 1)
	rec.Outcome = "produced"
	require.NoError(t, s1.Append(rec))
	require.NoError(t, s1.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE productions SET timestamp = 'not-a-time' WHERE id = ?`, rec.ID)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s2, err := ledger.NewSQLiteStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.List("")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), rec.ID)
	assert.Contains(t, err.Error(), "timestamp")
}

func TestSQLiteStore_DuplicateID(t *testing.T) {
	s, err := ledger.NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer s.Close()

	rec := ledger.NewRecord("shapes", "Square", 1)
	require.NoError(t, s.Append(rec))
	assert.Error(t, s.Append(rec))
}

func TestSQLiteStore_InvalidPath(t *testing.T) {
	_, err := ledger.NewSQLiteStore("/nonexistent/path/ledger.db")
	assert.Error(t, err)
}
