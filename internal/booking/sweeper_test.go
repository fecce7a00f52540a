package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepPurgesExpiredBookings(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(20, 0), 2))
	require.NoError(t, err)

	// One second short of the grace period after the booking ends: kept.
	s.now = func() time.Time { return b.EndTime.Add(GracePeriod - time.Second) }
	require.NoError(t, s.Sweep())

	bookings, _ := store.ListBookings()
	assert.Len(t, bookings, 1)

	tables, _ := store.ListTables()
	assert.True(t, tables[0].Occupied)

	// Past the grace period: purged, table freed.
	s.now = func() time.Time { return b.EndTime.Add(GracePeriod + time.Second) }
	require.NoError(t, s.Sweep())

	bookings, _ = store.ListBookings()
	assert.Empty(t, bookings)

	tables, _ = store.ListTables()
	assert.False(t, tables[0].Occupied)
}

func TestSweepIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(20, 0), 2))
	require.NoError(t, err)

	s.now = func() time.Time { return b.EndTime.Add(GracePeriod + time.Hour) }

	require.NoError(t, s.Sweep())
	require.NoError(t, s.Sweep())

	bookings, _ := store.ListBookings()
	assert.Empty(t, bookings)
}

func TestSweepKeepsUnexpiredBookings(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)
	store.CreateTable(4)

	s := newTestService(store)

	old, err := s.Allocate(validRequest("111111111", friday(12, 0), 2))
	require.NoError(t, err)

	fresh, err := s.Allocate(validRequest("222222222", friday(12, 0), 4))
	require.NoError(t, err)
	require.NotEqual(t, old.TableID, fresh.TableID)

	// Push only the first booking past the grace period by moving it back in
	// the ledger, then sweep from the original clock.
	store.bookings[0].EndTime = testNow.Add(-GracePeriod - time.Minute)

	require.NoError(t, s.Sweep())

	bookings, _ := store.ListBookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, fresh.ID, bookings[0].ID)

	oldTable, _ := store.GetTable(old.TableID)
	assert.False(t, oldTable.Occupied)

	freshTable, _ := store.GetTable(fresh.TableID)
	assert.True(t, freshTable.Occupied)
}
