package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelFreesTable(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(19, 0), 2))
	require.NoError(t, err)

	require.NoError(t, s.Cancel(b.ID))

	tables, _ := store.ListTables()
	assert.False(t, tables[0].Occupied)

	assert.ErrorIs(t, s.Cancel(b.ID), ErrBookingNotFound)
}

func TestCancelKeepsTableOccupiedWhileBookingsRemain(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	first, err := s.Allocate(validRequest("111111111", friday(18, 0), 2))
	require.NoError(t, err)

	second, err := s.Allocate(validRequest("222222222", friday(20, 0), 2))
	require.NoError(t, err)
	require.Equal(t, first.TableID, second.TableID)

	require.NoError(t, s.Cancel(first.ID))

	tables, _ := store.ListTables()
	assert.True(t, tables[0].Occupied)

	require.NoError(t, s.Cancel(second.ID))

	tables, _ = store.ListTables()
	assert.False(t, tables[0].Occupied)
}

func TestCreateTableRejectsInvalidCapacity(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	s := newTestService(store)

	_, err := s.CreateTable(0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = s.CreateTable(-2)
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	table, err := s.CreateTable(4)
	require.NoError(t, err)
	assert.Equal(t, 4, table.Capacity)
	assert.False(t, table.Occupied)
}

func TestDeleteTableRefusesOccupied(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	table, _ := store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(19, 0), 2))
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteTable(table.ID), ErrTableOccupied)

	require.NoError(t, s.Cancel(b.ID))
	require.NoError(t, s.DeleteTable(table.ID))

	tables, _ := store.ListTables()
	assert.Empty(t, tables)

	assert.ErrorIs(t, s.DeleteTable(table.ID), ErrTableNotFound)
}

func TestListBookingsPublicOnlyShowsOccupiedTables(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(19, 0), 2))
	require.NoError(t, err)

	public, err := s.ListBookings(false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, b.ID, public[0].ID)

	// Manually clear the flag: the public view must drop the booking while
	// the admin view still sees it.
	store.setOccupied(b.TableID, false)

	public, err = s.ListBookings(false)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := s.ListBookings(true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListOperationsSweepFirst(t *testing.T) {
	t.Parallel()

	store := newMemStore()
	store.CreateTable(2)

	s := newTestService(store)

	b, err := s.Allocate(validRequest("316123456789", friday(19, 0), 2))
	require.NoError(t, err)

	s.now = func() time.Time { return b.EndTime.Add(GracePeriod + time.Minute) }

	bookings, err := s.ListBookings(true)
	require.NoError(t, err)
	assert.Empty(t, bookings, "listing must purge expired bookings before reading")

	tables, err := s.ListTables()
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.False(t, tables[0].Occupied)
}
